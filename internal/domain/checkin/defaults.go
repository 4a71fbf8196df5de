package checkin

import "time"

// DefaultWindowConfig is the compiled-in office schedule.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		DefaultWindow: &Window{StartHour: 8, StartMinute: 30, EndHour: 9, EndMinute: 10},
		DayWindows: map[time.Weekday]Window{
			time.Friday:   {StartHour: 9, StartMinute: 0, EndHour: 9, EndMinute: 30},
			time.Saturday: {StartHour: 10, StartMinute: 0, EndHour: 12, EndMinute: 40},
		},
		SpecialDates: map[string]Window{
			"2023-12-24": {StartHour: 10, StartMinute: 0, EndHour: 12, EndMinute: 0},
		},
		BlackoutDates: []string{"2023-12-25", "2024-01-01"},
	}
}
