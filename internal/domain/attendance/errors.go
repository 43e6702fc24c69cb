package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("attendance already recorded for this day")
	ErrNotCheckedIn      = errors.New("no check-in recorded for this day")
	ErrAlreadyCheckedOut = errors.New("check-out already recorded for this day")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
)
