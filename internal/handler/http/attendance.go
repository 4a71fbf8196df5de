package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
)

type AttendanceHandler interface {
	// Mine returns the caller's history and category tabs
	Mine(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mine handles GET /attendance
func (h *attendanceHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMyAttendance(r.Context(), session)
	if err != nil {
		slog.Error("GetMyAttendance service error", "employee_id", session.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
