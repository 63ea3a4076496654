package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for the employee directory.
// Every operation takes the acting principal explicitly, access decisions
// never come from ambient state.
type EmployeeService interface {
	// GetEmployee retrieves a single employee, subject to the visibility
	// rules (self, elevated role, or manager of the target).
	GetEmployee(ctx context.Context, actor Principal, id string) (EmployeeResponse, error)

	// CreateEmployee provisions a new employee record (HR Admin+).
	CreateEmployee(ctx context.Context, actor Principal, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateProfile lets an employee change the self-service fields on
	// their own record.
	UpdateProfile(ctx context.Context, actor Principal, req UpdateProfileRequest) (EmployeeResponse, error)

	// UpdateEmployee updates any record (HR Admin+).
	UpdateEmployee(ctx context.Context, actor Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UploadProfileImage stores the image under a key derived from the
	// employee id and records the URL.
	UploadProfileImage(ctx context.Context, actor Principal, employeeID, filename string, file io.Reader) (string, error)

	// ListEmployees lists all records (HR Admin+).
	ListEmployees(ctx context.Context, actor Principal) ([]EmployeeResponse, error)

	// SearchEmployees searches by name or email (HR Admin+).
	SearchEmployees(ctx context.Context, actor Principal, query string) ([]EmployeeResponse, error)

	// GetMyTeam lists the direct reports of the acting manager.
	GetMyTeam(ctx context.Context, actor Principal) ([]EmployeeResponse, error)

	// GetIncompleteProfiles lists records below the profile completion
	// threshold (HR Admin+).
	GetIncompleteProfiles(ctx context.Context, actor Principal) ([]EmployeeResponse, error)

	// GetHierarchy returns the organisation hierarchy view (HR Admin+).
	GetHierarchy(ctx context.Context, actor Principal) ([]HierarchyNodeResponse, error)

	// ReassignEmployee moves an employee to another department and/or
	// manager and notifies them (HR Admin+).
	ReassignEmployee(ctx context.Context, actor Principal, id string, req ReassignEmployeeRequest) error

	// AssignRole grants a catalog role. System Admin may grant any role,
	// HR Admin may grant up to HR Admin.
	AssignRole(ctx context.Context, actor Principal, employeeID string, req AssignRoleRequest) error

	// RemoveRole revokes a catalog role (System Admin only).
	RemoveRole(ctx context.Context, actor Principal, employeeID string, req AssignRoleRequest) error

	// SetActive activates or deactivates an account (HR Admin+).
	SetActive(ctx context.Context, actor Principal, employeeID string, active bool) error

	// ListDepartments lists the department catalog.
	ListDepartments(ctx context.Context) ([]Department, error)

	// CreateDepartment adds a department to the catalog (HR Admin+).
	CreateDepartment(ctx context.Context, actor Principal, name string) (Department, error)
}
