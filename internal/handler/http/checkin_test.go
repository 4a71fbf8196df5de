package http

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/domain/checkin"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/report"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInHandler_Window_Public(t *testing.T) {
	ts := newTestServer(t)
	ts.checkIn.availability = checkin.Availability{Allowed: true, Message: "Check-in available until 9:10"}

	rec := ts.do(t, http.MethodGet, "/api/v1/checkin/window", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["allowed"])
	assert.Equal(t, "Check-in available until 9:10", data["message"])
}

func TestCheckInHandler_Options(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/checkin/options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Office", data[0].(map[string]interface{})["value"])
}

func TestCheckInHandler_CheckIn_Created(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/checkin", ts.token(t, auth.RoleEmployee), map[string]string{"status": "Absent - Sick"})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	record := data["record"].(map[string]interface{})
	assert.Equal(t, "absent-sick", record["status"])
}

func TestCheckInHandler_CheckIn_InvalidStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/checkin", ts.token(t, auth.RoleEmployee), map[string]string{"status": "Remote"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckInHandler_CheckIn_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			"window closed",
			&checkin.WindowClosedError{Availability: checkin.Availability{Message: "Check-in will open at 8:30"}},
			http.StatusForbidden,
			"Check-in will open at 8:30",
		},
		{"already checked in", checkin.ErrAlreadyCheckedIn, http.StatusConflict, "You have already checked in today"},
		{"location required", checkin.ErrLocationRequired, http.StatusBadRequest, "Location is required for office check-in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.checkIn.checkInErr = tt.err

			rec := ts.do(t, http.MethodPost, "/api/v1/checkin", ts.token(t, auth.RoleEmployee), map[string]string{"status": "Bootcamp"})
			assert.Equal(t, tt.code, rec.Code)

			errObj := decodeBody(t, rec)["error"].(map[string]interface{})
			assert.Equal(t, tt.message, errObj["message"])
		})
	}
}

func TestCheckInHandler_Stream(t *testing.T) {
	ts := newTestServer(t)
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ts.checkIn.hub.Publish(sse.Event{
		Topic: "window",
		Event: "window",
		Data:  checkin.Availability{Allowed: false, Message: "Check-in is not available today."},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// EventSource cannot send headers, so the token rides in the query.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/checkin/window/stream?jwt="+ts.token(t, auth.RoleEmployee), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events []string
	var windowData string
	scanner := bufio.NewScanner(resp.Body)
	for windowData == "" && scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			events = append(events, strings.TrimPrefix(line, "event: "))
		case strings.HasPrefix(line, "data: ") && len(events) == 2:
			windowData = strings.TrimPrefix(line, "data: ")
		}
	}
	assert.Equal(t, []string{"connected", "window"}, events)
	assert.Contains(t, windowData, "Check-in is not available today.")
}

func TestCheckInHandler_Stream_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/checkin/window/stream", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/dashboard", ts.token(t, auth.RoleEmployee), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["checked_in_today"])
}

func TestDashboardHandler_GetDailyMetrics(t *testing.T) {
	ts := newTestServer(t)
	ts.attendance.metrics = attendance.DailyMetricsResponse{Date: "2024-03-04", PresentCount: 3, LateCutoff: "9:10"}

	rec := ts.do(t, http.MethodGet, "/api/v1/admin/metrics?date=2024-03-04", ts.token(t, auth.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["present_count"])
	assert.Equal(t, "9:10", data["late_cutoff"])
}

func TestReportHandler_ExportDailyMetrics(t *testing.T) {
	ts := newTestServer(t)
	ts.attendance.export = []byte("xlsx-bytes")

	rec := ts.do(t, http.MethodGet, "/api/v1/admin/metrics/export?date=2024-03-04", ts.token(t, auth.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance-2024-03-04.xlsx")
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}

func TestReportHandler_ExportFailed(t *testing.T) {
	ts := newTestServer(t)
	ts.attendance.err = attendance.ErrExportFailed

	rec := ts.do(t, http.MethodGet, "/api/v1/admin/metrics/export", ts.token(t, auth.RoleAdmin), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
