package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCatalog(t *testing.T) {
	assert.Len(t, AllRoles(), 4)

	for _, r := range AllRoles() {
		assert.True(t, IsValidRole(string(r)))
	}
	assert.False(t, IsValidRole("Superuser"))
	assert.False(t, IsValidRole(""))
}

func TestRoleElevated(t *testing.T) {
	assert.True(t, RoleSystemAdmin.Elevated())
	assert.True(t, RoleHRAdmin.Elevated())
	assert.False(t, RoleLineManager.Elevated())
	assert.False(t, RoleEmployee.Elevated())
}

func TestSelfRegisterRoles_ExcludesEmployee(t *testing.T) {
	for _, r := range SelfRegisterRoles() {
		assert.NotEqual(t, RoleEmployee, r)
	}
}

func TestPrincipal_Elevated(t *testing.T) {
	manager := Principal{EmployeeID: "e1", Roles: []Role{RoleLineManager}}
	assert.False(t, manager.Elevated())
	assert.True(t, manager.IsManager())
	assert.True(t, manager.HasRole(RoleLineManager))
	assert.False(t, manager.HasRole(RoleHRAdmin))

	admin := Principal{EmployeeID: "e2", Roles: []Role{RoleEmployee, RoleHRAdmin}}
	assert.True(t, admin.Elevated())
	assert.False(t, admin.IsManager())

	nobody := Principal{EmployeeID: "e3"}
	assert.False(t, nobody.Elevated())
	assert.False(t, nobody.HasRole(RoleEmployee))
}

func TestEmployeeRoleNames(t *testing.T) {
	emp := Employee{Roles: []Role{RoleEmployee, RoleLineManager}}
	assert.Equal(t, []string{"Employee", "Line Manager"}, emp.RoleNames())

	none := Employee{}
	assert.Empty(t, none.RoleNames())
}
