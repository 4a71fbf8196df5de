package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
)

// AttendanceRepository is the upstream attendance API. Every call runs with
// the caller's session token.
type AttendanceRepository interface {
	// ListMine returns the session employee's records
	ListMine(ctx context.Context, session auth.Session) ([]Record, error)

	// ListByDate returns every employee's records for one day (admin)
	ListByDate(ctx context.Context, session auth.Session, date string) ([]Record, error)

	// CheckIn submits today's check-in and returns the created record
	CheckIn(ctx context.Context, session auth.Session, payload CheckInPayload) (Record, error)
}
