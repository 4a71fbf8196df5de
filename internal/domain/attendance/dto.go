package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
)

// ========================================
// UPSTREAM PAYLOADS
// ========================================

// CheckInPayload is the body posted to the upstream check-in endpoint.
// Coordinates are only sent for office check-ins.
type CheckInPayload struct {
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ========================================
// FILTERS
// ========================================

type DailyMetricsFilter struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

// Validate fills in today's date when empty and rejects future dates.
func (f *DailyMetricsFilter) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	today := now.Format("2006-01-02")
	if validator.IsEmpty(f.Date) {
		f.Date = today
	}

	if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else if f.Date > today {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must not be in the future",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// DASHBOARD
// ========================================

type DashboardResponse struct {
	Employee       auth.Profile         `json:"employee"`
	CheckedInToday bool                 `json:"checked_in_today"`
	Attendance     MyAttendanceResponse `json:"attendance"`
}
