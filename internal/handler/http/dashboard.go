package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
)

type DashboardHandler interface {
	// GetDashboard returns the caller's profile, today's status and tabs
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetDailyMetrics returns the admin summary for one day
	GetDailyMetrics(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewDashboardHandler(attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{attendanceService: attendanceService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetDashboard(r.Context(), session)
	if err != nil {
		slog.Error("GetDashboard service error", "employee_id", session.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyMetrics handles GET /admin/metrics
func (h *dashboardHandlerImpl) GetDailyMetrics(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.DailyMetricsFilter{
		Date: r.URL.Query().Get("date"), // format: YYYY-MM-DD, default: today
	}

	result, err := h.attendanceService.GetDailyMetrics(r.Context(), session, filter)
	if err != nil {
		slog.Error("GetDailyMetrics service error", "date", filter.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
