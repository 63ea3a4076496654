package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	SetNationalIDHash(ctx context.Context, id string, hash string) error
	SetProfileImageURL(ctx context.Context, id string, url string) error
	SetActive(ctx context.Context, id string, active bool) error
	SetContractID(ctx context.Context, id string, contractID string) error
	Reassign(ctx context.Context, id string, departmentID, managerID *string) error
	List(ctx context.Context) ([]Employee, error)
	Search(ctx context.Context, query string) ([]Employee, error)
	GetTeam(ctx context.Context, managerID string) ([]Employee, error)
	GetByRole(ctx context.Context, role Role) ([]Employee, error)
	GetIncompleteProfiles(ctx context.Context, threshold int) ([]Employee, error)
	GetHierarchy(ctx context.Context) ([]HierarchyNode, error)
}

type RoleRepository interface {
	GetRoles(ctx context.Context, employeeID string) ([]Role, error)
	Assign(ctx context.Context, employeeID string, role Role) error
	Remove(ctx context.Context, employeeID string, role Role) error
	HasRole(ctx context.Context, employeeID string, role Role) (bool, error)
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, name string) (Department, error)
}
