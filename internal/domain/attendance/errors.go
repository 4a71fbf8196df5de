package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordsUnavailable = errors.New("attendance records could not be loaded")
	ErrExportFailed       = errors.New("attendance report could not be generated")
)
