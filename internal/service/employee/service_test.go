package employee

import (
	"context"
	"testing"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileCompletion(t *testing.T) {
	empty := employee.Employee{}
	assert.Equal(t, 0, profileCompletion(empty))

	minimal := employee.Employee{
		FullName: "Test Person",
		Email:    "test@example.com",
	}
	assert.Equal(t, 20, profileCompletion(minimal))

	dob := time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)
	deptID := "dept-1"
	managerID := "mgr-1"
	full := employee.Employee{
		FullName:        "Test Person",
		Email:           "test@example.com",
		PhoneNumber:     strPtr("+1234567"),
		Address:         strPtr("1 Main St"),
		DateOfBirth:     &dob,
		Gender:          strPtr("Female"),
		JobTitle:        strPtr("Engineer"),
		DepartmentID:    &deptID,
		ManagerID:       &managerID,
		ProfileImageURL: strPtr("/files/profile/e1.png"),
	}
	assert.Equal(t, 100, profileCompletion(full))
}

func TestProfileCompletion_EmptyOptionalStringsDoNotCount(t *testing.T) {
	emp := employee.Employee{
		FullName:    "Test Person",
		Email:       "test@example.com",
		PhoneNumber: strPtr(""),
		Gender:      strPtr(""),
	}
	assert.Equal(t, 20, profileCompletion(emp))
}

func TestCanView(t *testing.T) {
	svc := &EmployeeServiceImpl{}
	managerID := "mgr-1"
	target := employee.Employee{ID: "emp-1", ManagerID: &managerID}

	self := employee.Principal{EmployeeID: "emp-1", Roles: []employee.Role{employee.RoleEmployee}}
	assert.True(t, svc.canView(self, target))

	admin := employee.Principal{EmployeeID: "other", Roles: []employee.Role{employee.RoleHRAdmin}}
	assert.True(t, svc.canView(admin, target))

	directManager := employee.Principal{EmployeeID: "mgr-1", Roles: []employee.Role{employee.RoleLineManager}}
	assert.True(t, svc.canView(directManager, target))

	// A manager above the direct one gets no visibility, the check does
	// not walk the chain.
	grandManager := employee.Principal{EmployeeID: "mgr-0", Roles: []employee.Role{employee.RoleLineManager}}
	assert.False(t, svc.canView(grandManager, target))

	stranger := employee.Principal{EmployeeID: "emp-2", Roles: []employee.Role{employee.RoleEmployee}}
	assert.False(t, svc.canView(stranger, target))
}

func TestCreateEmployee_HRAdminCannotProvisionSystemAdmin(t *testing.T) {
	// The guard runs before any store access, so no repositories are needed.
	svc := &EmployeeServiceImpl{}
	hrAdmin := employee.Principal{EmployeeID: "emp-hr", Roles: []employee.Role{employee.RoleHRAdmin}}

	_, err := svc.CreateEmployee(context.Background(), hrAdmin, employee.CreateEmployeeRequest{
		FullName: "New Admin",
		Email:    "new.admin@example.com",
		Roles:    []string{string(employee.RoleSystemAdmin)},
	})
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}

func TestCanGrant(t *testing.T) {
	svc := &EmployeeServiceImpl{}
	sysAdmin := employee.Principal{Roles: []employee.Role{employee.RoleSystemAdmin}}
	hrAdmin := employee.Principal{Roles: []employee.Role{employee.RoleHRAdmin}}

	assert.True(t, svc.canGrant(sysAdmin, employee.RoleSystemAdmin))
	assert.True(t, svc.canGrant(hrAdmin, employee.RoleHRAdmin))
	assert.True(t, svc.canGrant(hrAdmin, employee.RoleLineManager))
	assert.False(t, svc.canGrant(hrAdmin, employee.RoleSystemAdmin))
}
