package employee

import (
	"time"
)

// Role is one of the fixed access roles. The catalog is closed, the role
// rows in the store are seeded from these names.
type Role string

const (
	RoleSystemAdmin Role = "System Admin"
	RoleHRAdmin     Role = "HR Admin"
	RoleLineManager Role = "Line Manager"
	RoleEmployee    Role = "Employee"
)

// AllRoles returns the full role catalog.
func AllRoles() []Role {
	return []Role{RoleSystemAdmin, RoleHRAdmin, RoleLineManager, RoleEmployee}
}

// IsValidRole reports whether name is part of the role catalog.
func IsValidRole(name string) bool {
	for _, r := range AllRoles() {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Elevated reports whether the role bypasses team-scoped access rules.
func (r Role) Elevated() bool {
	return r == RoleSystemAdmin || r == RoleHRAdmin
}

// SelfRegisterRoles are the roles an account may claim at self-registration.
// Plain Employee accounts are provisioned by HR only.
func SelfRegisterRoles() []Role {
	return []Role{RoleSystemAdmin, RoleHRAdmin, RoleLineManager}
}

// Employee entity. NationalIDHash is nil until the employee completes the
// first-time login flow, the national id doubles as the login credential.
type Employee struct {
	ID             string
	FullName       string
	Email          string
	NationalIDHash *string

	PhoneNumber     *string
	Address         *string
	DateOfBirth     *time.Time
	Gender          *string
	JobTitle        *string
	ProfileImageURL *string

	DepartmentID *string
	ManagerID    *string
	ContractID   *string

	IsActive          bool
	ProfileCompletion int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads that join related tables
	DepartmentName *string
	ManagerName    *string
	Roles          []Role
}

// HasRole reports whether the employee holds the given role.
func (e Employee) HasRole(role Role) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleNames returns the employee's roles as plain strings, for token claims.
func (e Employee) RoleNames() []string {
	names := make([]string, 0, len(e.Roles))
	for _, r := range e.Roles {
		names = append(names, string(r))
	}
	return names
}

// Department entity
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleAssignment links an employee to a catalog role.
type RoleAssignment struct {
	EmployeeID string
	Role       Role
	AssignedAt time.Time
}

// HierarchyNode is one row of the organisation hierarchy view.
type HierarchyNode struct {
	EmployeeID     string
	FullName       string
	JobTitle       *string
	DepartmentID   *string
	DepartmentName *string
	ManagerID      *string
	ManagerName    *string
	TeamSize       int
}
