package mission

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

type MissionService interface {
	// AssignMission creates a mission in Assigned status and notifies the
	// employee (HR Admin+).
	AssignMission(ctx context.Context, actor employee.Principal, req AssignMissionRequest) (MissionResponse, error)

	// GetMission returns one mission, subject to the visibility rules.
	GetMission(ctx context.Context, actor employee.Principal, id string) (MissionResponse, error)

	// ListMyMissions lists the acting employee's missions.
	ListMyMissions(ctx context.Context, actor employee.Principal) ([]MissionResponse, error)

	// ListTeamMissions lists missions the acting manager reviews.
	ListTeamMissions(ctx context.Context, actor employee.Principal) ([]MissionResponse, error)

	// ListAllMissions lists every mission (HR Admin+).
	ListAllMissions(ctx context.Context, actor employee.Principal) ([]MissionResponse, error)

	// ApproveMission approves a reviewable mission. Only the assigned
	// manager may decide it.
	ApproveMission(ctx context.Context, actor employee.Principal, id string) error

	// RejectMission rejects a reviewable mission with a reason and sends a
	// high-urgency notification to the employee.
	RejectMission(ctx context.Context, actor employee.Principal, id string, req RejectMissionRequest) error
}
