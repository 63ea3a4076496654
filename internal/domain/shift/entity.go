package shift

import "time"

// Shift is a named working window, e.g. "Morning 08:00-16:00".
type Shift struct {
	ID          string
	Name        string
	StartTime   string // "15:04"
	EndTime     string // "15:04"
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssignmentKind distinguishes how an assignment was produced.
type AssignmentKind string

const (
	AssignmentKindStandard   AssignmentKind = "standard"
	AssignmentKindCustom     AssignmentKind = "custom"
	AssignmentKindSplit      AssignmentKind = "split"
	AssignmentKindRotational AssignmentKind = "rotational"
)

// Assignment links a shift to an employee or a whole department for a
// validity window. Exactly one of EmployeeID and DepartmentID is set.
type Assignment struct {
	ID           string
	ShiftID      string
	EmployeeID   *string
	DepartmentID *string
	Kind         AssignmentKind
	ValidFrom    time.Time
	ValidTo      *time.Time
	CreatedAt    time.Time

	ShiftName      *string
	EmployeeName   *string
	DepartmentName *string
}
