package shift

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

type ShiftService interface {
	// CreateShift defines a new shift type (System Admin only).
	CreateShift(ctx context.Context, actor employee.Principal, req CreateShiftRequest) (ShiftResponse, error)

	// ListShifts lists the shift catalog.
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	// AssignToEmployee assigns a shift to one employee and notifies them
	// (HR Admin+).
	AssignToEmployee(ctx context.Context, actor employee.Principal, employeeID string, req AssignShiftRequest) (AssignmentResponse, error)

	// AssignToDepartment assigns a shift to every employee of a department.
	// No individual notifications are sent (HR Admin+).
	AssignToDepartment(ctx context.Context, actor employee.Principal, departmentID string, req AssignShiftRequest) (AssignmentResponse, error)

	// AssignCustom creates a one-off shift window for an employee
	// (HR Admin+).
	AssignCustom(ctx context.Context, actor employee.Principal, req CustomShiftRequest) (AssignmentResponse, error)

	// ConfigureSplit sets up a two-window day for an employee (HR Admin+).
	ConfigureSplit(ctx context.Context, actor employee.Principal, req SplitShiftRequest) error

	// AssignRotational cycles an employee through shifts (HR Admin+).
	AssignRotational(ctx context.Context, actor employee.Principal, req RotationalShiftRequest) error

	// GetMyAssignments lists the acting employee's shift assignments.
	GetMyAssignments(ctx context.Context, actor employee.Principal) ([]AssignmentResponse, error)

	// ListAssignments lists every assignment (System Admin only).
	ListAssignments(ctx context.Context, actor employee.Principal) ([]AssignmentResponse, error)
}
