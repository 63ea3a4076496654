package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceComplete = errors.New("attendance for today is already complete")
	ErrAttendanceNotOpen  = errors.New("no open attendance record to clock out of")
	ErrAttendanceNotOwned = errors.New("attendance record belongs to another employee")
	ErrCorrectionNotFound = errors.New("correction request not found")
	ErrAccessDenied       = errors.New("access denied")
)
