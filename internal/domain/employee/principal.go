package employee

// Principal is the authenticated identity a request acts as. It is built
// once from the verified token claims and passed explicitly into services.
type Principal struct {
	EmployeeID string
	FullName   string
	Email      string
	Roles      []Role
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Elevated reports whether any held role bypasses team-scoped access rules.
func (p Principal) Elevated() bool {
	for _, r := range p.Roles {
		if r.Elevated() {
			return true
		}
	}
	return false
}

// IsManager reports whether the principal holds the Line Manager role.
func (p Principal) IsManager() bool {
	return p.HasRole(RoleLineManager)
}
