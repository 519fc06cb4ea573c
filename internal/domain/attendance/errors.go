package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDay       = errors.New("attendance already recorded for this employee and date")
)
