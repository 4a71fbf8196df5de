package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/domain/checkin"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/utils"
)

const (
	// WindowTopic carries re-evaluated check-in availability
	WindowTopic = "checkin.window"
	windowEvent = "window"
)

var _ checkin.CheckInService = (*CheckInServiceImpl)(nil)

type CheckInServiceImpl struct {
	attendance.AttendanceRepository
	auth.AuthRepository

	evaluator *checkin.Evaluator
	hub       *sse.Hub
	office    *attendance.Location
	now       func() time.Time
}

// NewCheckInService builds the check-in service. office may be nil, in which
// case no local distance estimate is made.
func NewCheckInService(
	evaluator *checkin.Evaluator,
	attendanceRepository attendance.AttendanceRepository,
	authRepository auth.AuthRepository,
	hub *sse.Hub,
	office *attendance.Location,
) *CheckInServiceImpl {
	return &CheckInServiceImpl{
		AttendanceRepository: attendanceRepository,
		AuthRepository:       authRepository,
		evaluator:            evaluator,
		hub:                  hub,
		office:               office,
		now:                  time.Now,
	}
}

// WithClock replaces the wall clock, for tests and replays.
func (s *CheckInServiceImpl) WithClock(now func() time.Time) *CheckInServiceImpl {
	s.now = now
	return s
}

// Window implements checkin.CheckInService.
func (s *CheckInServiceImpl) Window(ctx context.Context) checkin.Availability {
	return s.evaluator.Evaluate(s.now())
}

// Options implements checkin.CheckInService.
func (s *CheckInServiceImpl) Options(ctx context.Context) []checkin.OptionResponse {
	opts := checkin.Options()
	resp := make([]checkin.OptionResponse, 0, len(opts))
	for _, o := range opts {
		resp = append(resp, checkin.OptionResponse{
			Value:            o,
			Status:           o.PayloadStatus(),
			RequiresLocation: o.RequiresLocation(),
		})
	}
	return resp
}

// CheckIn implements checkin.CheckInService.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context, session auth.Session, req checkin.CheckInRequest) (checkin.CheckInResponse, error) {
	now := s.now()
	availability := s.evaluator.Evaluate(now)
	if !availability.Allowed {
		return checkin.CheckInResponse{}, &checkin.WindowClosedError{Availability: availability}
	}

	if req.Status.RequiresLocation() && (req.Latitude == nil || req.Longitude == nil) {
		return checkin.CheckInResponse{}, checkin.ErrLocationRequired
	}

	profile, err := s.AuthRepository.Profile(ctx, session)
	if err != nil {
		// The upstream rejects duplicates on its own, so a missing profile
		// only costs the early answer.
		slog.Warn("Failed to load profile before check-in", "employee_id", session.EmployeeID, "error", err)
	} else if profile.CheckedInOn(now, s.evaluator.Location()) {
		return checkin.CheckInResponse{}, checkin.ErrAlreadyCheckedIn
	}

	record, err := s.AttendanceRepository.CheckIn(ctx, session, req.Payload())
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("failed to submit check-in: %w", err)
	}

	resp := checkin.CheckInResponse{Record: record, Distance: record.Distance}
	if resp.Distance == nil && req.Status.RequiresLocation() && s.office != nil {
		d := utils.HaversineMeters(*req.Latitude, *req.Longitude, s.office.Latitude, s.office.Longitude)
		resp.Distance = &d
		resp.Estimated = true
	}

	slog.Info("Check-in submitted", "employee_id", session.EmployeeID, "status", req.Status, "record_id", record.ID)
	return resp, nil
}

// Subscribe implements checkin.CheckInService.
func (s *CheckInServiceImpl) Subscribe(ctx context.Context) (<-chan sse.Event, func()) {
	if _, ok := s.hub.Last(WindowTopic); !ok {
		s.PublishWindow(ctx)
	}
	return s.hub.Subscribe(WindowTopic)
}

// PublishWindow evaluates the window now and pushes it to subscribers.
func (s *CheckInServiceImpl) PublishWindow(ctx context.Context) error {
	s.hub.Publish(sse.Event{
		Topic: WindowTopic,
		Event: windowEvent,
		Data:  s.evaluator.Evaluate(s.now()),
	})
	return nil
}
