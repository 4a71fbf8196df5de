package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
)

// AttendanceService turns upstream records into view models
type AttendanceService interface {
	// GetMyAttendance returns the history and category tabs for the session employee
	GetMyAttendance(ctx context.Context, session auth.Session) (MyAttendanceResponse, error)

	// GetDashboard loads profile and records concurrently
	GetDashboard(ctx context.Context, session auth.Session) (DashboardResponse, error)

	// GetDailyMetrics classifies every employee's records for one day (admin)
	GetDailyMetrics(ctx context.Context, session auth.Session, filter DailyMetricsFilter) (DailyMetricsResponse, error)

	// ExportDailyMetrics renders GetDailyMetrics as an xlsx workbook (admin)
	ExportDailyMetrics(ctx context.Context, session auth.Session, filter DailyMetricsFilter) ([]byte, error)
}
