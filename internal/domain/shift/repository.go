package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
}

// AssignmentRepository wraps the shift assignment procedures. The split,
// custom and rotational variants are stored procedures treated as atomic.
type AssignmentRepository interface {
	AssignToEmployee(ctx context.Context, shiftID, employeeID string, validFrom time.Time, validTo *time.Time) (Assignment, error)
	AssignToDepartment(ctx context.Context, shiftID, departmentID string, validFrom time.Time, validTo *time.Time) (Assignment, error)
	AssignCustom(ctx context.Context, employeeID, startTime, endTime string, validFrom, validTo time.Time) (Assignment, error)
	ConfigureSplit(ctx context.Context, employeeID, firstStart, firstEnd, secondStart, secondEnd string, validFrom time.Time) error
	AssignRotational(ctx context.Context, employeeID string, shiftIDs []string, intervalDays int, validFrom time.Time) error
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
}
