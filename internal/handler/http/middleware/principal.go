package middleware

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/auth"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

// PrincipalFromContext rebuilds the acting identity from the verified
// token claims. Handlers call it once and pass the result into services,
// access decisions never read the context directly.
func PrincipalFromContext(ctx context.Context) (employee.Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.Principal{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.Principal{}, auth.ErrInvalidToken
	}

	principal := employee.Principal{EmployeeID: employeeID}
	if fullName, ok := claims["full_name"].(string); ok {
		principal.FullName = fullName
	}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}

	// Claims round-trip through JSON, the roles arrive as []interface{}.
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, raw := range rawRoles {
			if name, ok := raw.(string); ok && employee.IsValidRole(name) {
				principal.Roles = append(principal.Roles, employee.Role(name))
			}
		}
	}

	return principal, nil
}
