package middleware

import (
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
)

// RequireRole passes requests whose principal holds at least one of the
// given roles. Fine-grained ownership checks stay in the services, this
// guard only gates whole route groups.
func RequireRole(roles ...employee.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			for _, role := range roles {
				if principal.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Access denied")
		})
	}
}

// RequireElevated requires System Admin or HR Admin.
func RequireElevated(next http.Handler) http.Handler {
	return RequireRole(employee.RoleSystemAdmin, employee.RoleHRAdmin)(next)
}

// RequireSystemAdmin requires the System Admin role.
func RequireSystemAdmin(next http.Handler) http.Handler {
	return RequireRole(employee.RoleSystemAdmin)(next)
}

// RequireManager requires a managerial or elevated role.
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(employee.RoleLineManager, employee.RoleHRAdmin, employee.RoleSystemAdmin)(next)
}
