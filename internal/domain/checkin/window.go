package checkin

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

const (
	msgBlackout    = "Check-in is not available today."
	msgClosedToday = "Check-in is not available anymore today."
)

// Validate reports ErrNoDefaultWindow when the default window is missing and
// ErrInvalidWindow for any malformed window or date key.
func (c WindowConfig) Validate() error {
	if c.DefaultWindow == nil {
		return ErrNoDefaultWindow
	}
	if err := c.DefaultWindow.validate(); err != nil {
		return fmt.Errorf("%w: default window: %v", ErrInvalidWindow, err)
	}
	for day, w := range c.DayWindows {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidWindow, int(day))
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%w: %s window: %v", ErrInvalidWindow, day, err)
		}
	}
	for date, w := range c.SpecialDates {
		if _, ok := validator.IsValidDate(date); !ok {
			return fmt.Errorf("%w: special date %q must be YYYY-MM-DD", ErrInvalidWindow, date)
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%w: special date %s: %v", ErrInvalidWindow, date, err)
		}
	}
	for _, date := range c.BlackoutDates {
		if _, ok := validator.IsValidDate(date); !ok {
			return fmt.Errorf("%w: blackout date %q must be YYYY-MM-DD", ErrInvalidWindow, date)
		}
	}
	return nil
}

func (w Window) validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidHour(w.StartHour) {
		errs = append(errs, validator.ValidationError{Field: "start_hour", Message: "start_hour must be between 0 and 23"})
	}
	if !validator.IsValidHour(w.EndHour) {
		errs = append(errs, validator.ValidationError{Field: "end_hour", Message: "end_hour must be between 0 and 23"})
	}
	if !validator.IsValidMinute(w.StartMinute) {
		errs = append(errs, validator.ValidationError{Field: "start_minute", Message: "start_minute must be between 0 and 59"})
	}
	if !validator.IsValidMinute(w.EndMinute) {
		errs = append(errs, validator.ValidationError{Field: "end_minute", Message: "end_minute must be between 0 and 59"})
	}
	if len(errs) == 0 && w.StartMinutes() > w.EndMinutes() {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "window must not end before it starts"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Evaluate decides whether check-in is allowed at now. The calendar date,
// weekday and clock are taken in now's own location. The only error is
// ErrNoDefaultWindow.
func Evaluate(now time.Time, cfg WindowConfig) (Availability, error) {
	if cfg.DefaultWindow == nil {
		return Availability{}, ErrNoDefaultWindow
	}

	currentDate := now.Format(dateLayout)
	for _, d := range cfg.BlackoutDates {
		if d == currentDate {
			return Availability{Allowed: false, Message: msgBlackout, Date: currentDate, EvaluatedAt: now}, nil
		}
	}

	return evaluateWindow(now, currentDate, cfg.activeWindow(currentDate, now.Weekday())), nil
}

// activeWindow picks exactly one window; nothing is merged.
func (c WindowConfig) activeWindow(date string, day time.Weekday) Window {
	if w, ok := c.SpecialDates[date]; ok {
		return w
	}
	if w, ok := c.DayWindows[day]; ok {
		return w
	}
	return *c.DefaultWindow
}

func evaluateWindow(now time.Time, date string, w Window) Availability {
	nowMinutes := now.Hour()*60 + now.Minute()
	result := Availability{Date: date, Window: &w, EvaluatedAt: now}

	switch {
	case nowMinutes < w.StartMinutes():
		result.Message = "Check-in will open at " + w.Opens()
	case nowMinutes > w.EndMinutes():
		result.Message = msgClosedToday
	default:
		result.Allowed = true
		result.Message = "Check-in available until " + w.Closes()
	}
	return result
}

// Evaluator holds a validated, private copy of a WindowConfig and evaluates
// it in a fixed location. It is safe for concurrent use.
type Evaluator struct {
	cfg      WindowConfig
	blackout map[string]struct{}
	loc      *time.Location
}

// NewEvaluator validates cfg and copies it so later changes to the caller's
// maps cannot leak in. A nil loc means time.Local.
func NewEvaluator(cfg WindowConfig, loc *time.Location) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}

	def := *cfg.DefaultWindow
	frozen := WindowConfig{
		DefaultWindow: &def,
		DayWindows:    make(map[time.Weekday]Window, len(cfg.DayWindows)),
		SpecialDates:  make(map[string]Window, len(cfg.SpecialDates)),
	}
	for k, v := range cfg.DayWindows {
		frozen.DayWindows[k] = v
	}
	for k, v := range cfg.SpecialDates {
		frozen.SpecialDates[k] = v
	}

	blackout := make(map[string]struct{}, len(cfg.BlackoutDates))
	for _, d := range cfg.BlackoutDates {
		blackout[d] = struct{}{}
		frozen.BlackoutDates = append(frozen.BlackoutDates, d)
	}

	return &Evaluator{cfg: frozen, blackout: blackout, loc: loc}, nil
}

// Evaluate converts now to the evaluator's location and applies the window rules.
func (e *Evaluator) Evaluate(now time.Time) Availability {
	now = now.In(e.loc)
	currentDate := now.Format(dateLayout)
	if _, ok := e.blackout[currentDate]; ok {
		return Availability{Allowed: false, Message: msgBlackout, Date: currentDate, EvaluatedAt: now}
	}
	return evaluateWindow(now, currentDate, e.cfg.activeWindow(currentDate, now.Weekday()))
}

func (e *Evaluator) Location() *time.Location {
	return e.loc
}
