package checkin

import (
	"fmt"
	"time"
)

// Window is a same-day check-in window, inclusive at both ends.
type Window struct {
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

func (w Window) StartMinutes() int {
	return w.StartHour*60 + w.StartMinute
}

func (w Window) EndMinutes() int {
	return w.EndHour*60 + w.EndMinute
}

// Opens formats the start of the window as H:MM.
func (w Window) Opens() string {
	return fmt.Sprintf("%d:%02d", w.StartHour, w.StartMinute)
}

// Closes formats the end of the window as H:MM.
func (w Window) Closes() string {
	return fmt.Sprintf("%d:%02d", w.EndHour, w.EndMinute)
}

// WindowConfig decides when check-in is open. Lookup precedence, highest first:
// BlackoutDates, SpecialDates, DayWindows, DefaultWindow.
type WindowConfig struct {
	DefaultWindow *Window
	DayWindows    map[time.Weekday]Window
	SpecialDates  map[string]Window // keyed by YYYY-MM-DD
	BlackoutDates []string          // YYYY-MM-DD
}

// Availability is the outcome of evaluating the window at one instant.
type Availability struct {
	Allowed     bool      `json:"allowed"`
	Message     string    `json:"message"`
	Date        string    `json:"date"`
	Window      *Window   `json:"window,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
