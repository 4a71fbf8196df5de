package checkin

import (
	"context"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/sse"
)

type CheckInService interface {
	// Window evaluates the check-in window at the current wall-clock time
	Window(ctx context.Context) Availability

	// Options lists the selectable check-in statuses
	Options(ctx context.Context) []OptionResponse

	// CheckIn gates a validated request on the window and submits to upstream
	CheckIn(ctx context.Context, session auth.Session, req CheckInRequest) (CheckInResponse, error)

	// Subscribe streams window re-evaluations until cleanup is called
	Subscribe(ctx context.Context) (<-chan sse.Event, func())
}
