package mission

import "context"

type MissionRepository interface {
	Create(ctx context.Context, m Mission) (Mission, error)
	GetByID(ctx context.Context, id string) (Mission, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Mission, error)
	GetByManagerID(ctx context.Context, managerID string) ([]Mission, error)
	List(ctx context.Context) ([]Mission, error)
	// UpdateStatus moves the mission to newStatus only while it is still
	// reviewable and owned by managerID, and reports whether a row matched.
	UpdateStatus(ctx context.Context, id, managerID string, newStatus MissionStatus) (bool, error)
}
