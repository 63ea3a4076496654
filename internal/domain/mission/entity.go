package mission

import "time"

type MissionStatus string

const (
	MissionStatusAssigned  MissionStatus = "Assigned"
	MissionStatusPending   MissionStatus = "Pending"
	MissionStatusRequested MissionStatus = "Requested"
	MissionStatusApproved  MissionStatus = "Approved"
	MissionStatusRejected  MissionStatus = "Rejected"
)

// Reviewable reports whether a mission in this status can still be
// approved or rejected by its manager.
func (s MissionStatus) Reviewable() bool {
	return s == MissionStatusPending || s == MissionStatusRequested
}

// Mission entity. ManagerID is the reviewer, only that manager may decide
// the mission.
type Mission struct {
	ID          string
	EmployeeID  string
	ManagerID   *string
	Destination string
	Description *string
	Purpose     *string
	StartDate   time.Time
	EndDate     time.Time
	Status      MissionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated on reads that join the employee table
	EmployeeName *string
	ManagerName  *string
}
