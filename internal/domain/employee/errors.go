package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrEmailExists          = errors.New("an employee with this email already exists")
	ErrRoleNotFound         = errors.New("role not found")
	ErrRoleNotAssignable    = errors.New("role cannot be assigned by the acting account")
	ErrRoleAlreadyAssigned  = errors.New("employee already holds this role")
	ErrEmployeeInactive     = errors.New("employee account is deactivated")
	ErrAccessDenied         = errors.New("access denied")
	ErrCannotDeactivateSelf = errors.New("cannot deactivate your own account")
)
