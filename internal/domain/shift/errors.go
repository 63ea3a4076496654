package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrInvalidShiftWindow = errors.New("shift end time must differ from start time")
)
