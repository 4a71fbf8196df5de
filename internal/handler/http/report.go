package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/report"
)

type ReportHandler interface {
	// ExportDailyMetrics downloads the admin summary as xlsx
	ExportDailyMetrics(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportHandler(attendanceService attendance.AttendanceService) ReportHandler {
	return &reportHandlerImpl{attendanceService: attendanceService}
}

// ExportDailyMetrics handles GET /admin/metrics/export
func (h *reportHandlerImpl) ExportDailyMetrics(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.DailyMetricsFilter{
		Date: r.URL.Query().Get("date"),
	}

	data, err := h.attendanceService.ExportDailyMetrics(r.Context(), session, filter)
	if err != nil {
		slog.Error("ExportDailyMetrics service error", "date", filter.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	name := "attendance.xlsx"
	if filter.Date != "" {
		name = "attendance-" + filter.Date + ".xlsx"
	}
	response.Attachment(w, report.ContentType, name, data)
}
