package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrSettingsNotFound   = errors.New("attendance settings not found")
	ErrInvalidClockTime   = errors.New("invalid clock time")
)
