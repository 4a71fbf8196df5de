package checkin

import "errors"

// Check-in domain errors
var (
	// Configuration errors
	ErrNoDefaultWindow = errors.New("check-in window config has no default window")
	ErrInvalidWindow   = errors.New("invalid check-in window")

	// Submission errors
	ErrCheckInClosed    = errors.New("check-in is not available right now")
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrLocationRequired = errors.New("location is required for office check-in")
)

// WindowClosedError carries the evaluation that rejected a submission so the
// caller can show its message.
type WindowClosedError struct {
	Availability Availability
}

func (e *WindowClosedError) Error() string {
	return e.Availability.Message
}

func (e *WindowClosedError) Unwrap() error {
	return ErrCheckInClosed
}
