package attendance

import "time"

// Attendance entity. A record is open until Exit is set, completion is
// exit-presence, not a separate flag.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Entry        time.Time
	Exit         *time.Time
	LoginMethod  string
	LogoutMethod *string
	WorkMinutes  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	EmployeeName *string
}

// Complete reports whether the record has been closed with a clock-out.
func (a Attendance) Complete() bool {
	return a.Exit != nil
}

// DayStatus is the per-day state shown in team summaries.
type DayStatus string

const (
	DayStatusAbsent     DayStatus = "Absent"
	DayStatusIncomplete DayStatus = "Incomplete"
	DayStatusComplete   DayStatus = "Complete"
)

// StatusFor classifies a day given an optional attendance record.
func StatusFor(a *Attendance) DayStatus {
	switch {
	case a == nil:
		return DayStatusAbsent
	case a.Complete():
		return DayStatusComplete
	default:
		return DayStatusIncomplete
	}
}

// CorrectionStatus is always Pending, correction requests are recorded
// but have no resolution workflow.
type CorrectionStatus string

const CorrectionStatusPending CorrectionStatus = "Pending"

// CorrectionRequest entity
type CorrectionRequest struct {
	ID           string
	EmployeeID   string
	AttendanceID *string
	Date         time.Time
	Description  string
	Status       CorrectionStatus
	CreatedAt    time.Time
}

// TeamDaySummary is one row of the manager's team attendance view.
type TeamDaySummary struct {
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	Status       DayStatus
	Entry        *time.Time
	Exit         *time.Time
	WorkMinutes  *int
}
