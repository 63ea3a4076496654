package mission

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/mission"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type MissionServiceImpl struct {
	missionRepo         mission.MissionRepository
	employeeRepo        employee.EmployeeRepository
	notificationService notification.Service
}

func NewMissionService(
	missionRepo mission.MissionRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
) mission.MissionService {
	return &MissionServiceImpl{
		missionRepo:         missionRepo,
		employeeRepo:        employeeRepo,
		notificationService: notificationService,
	}
}

// AssignMission implements mission.MissionService. When no reviewer is
// named the employee's direct manager takes the role.
func (s *MissionServiceImpl) AssignMission(ctx context.Context, actor employee.Principal, req mission.AssignMissionRequest) (mission.MissionResponse, error) {
	if !actor.Elevated() {
		return mission.MissionResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return mission.MissionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return mission.MissionResponse{}, err
	}

	managerID := req.ManagerID
	if managerID == nil {
		managerID = emp.ManagerID
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.missionRepo.Create(ctx, mission.Mission{
		EmployeeID:  req.EmployeeID,
		ManagerID:   managerID,
		Destination: req.Destination,
		Description: req.Description,
		Purpose:     req.Purpose,
		StartDate:   start,
		EndDate:     end,
		Status:      mission.MissionStatusAssigned,
	})
	if err != nil {
		return mission.MissionResponse{}, err
	}

	if err := s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeMissionAssigned,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("You have been assigned the mission %q starting %s.", req.Destination, start.Format("2006-01-02")),
	}, req.EmployeeID); err != nil {
		return mission.MissionResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return mission.ToMissionResponse(created), nil
}

// GetMission implements mission.MissionService.
func (s *MissionServiceImpl) GetMission(ctx context.Context, actor employee.Principal, id string) (mission.MissionResponse, error) {
	m, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		return mission.MissionResponse{}, err
	}

	allowed := m.EmployeeID == actor.EmployeeID || actor.Elevated() ||
		(m.ManagerID != nil && *m.ManagerID == actor.EmployeeID)
	if !allowed {
		return mission.MissionResponse{}, employee.ErrAccessDenied
	}

	return mission.ToMissionResponse(m), nil
}

// ListMyMissions implements mission.MissionService.
func (s *MissionServiceImpl) ListMyMissions(ctx context.Context, actor employee.Principal) ([]mission.MissionResponse, error) {
	missions, err := s.missionRepo.GetByEmployeeID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return toResponses(missions), nil
}

// ListTeamMissions implements mission.MissionService.
func (s *MissionServiceImpl) ListTeamMissions(ctx context.Context, actor employee.Principal) ([]mission.MissionResponse, error) {
	missions, err := s.missionRepo.GetByManagerID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team missions: %w", err)
	}
	return toResponses(missions), nil
}

// ListAllMissions implements mission.MissionService.
func (s *MissionServiceImpl) ListAllMissions(ctx context.Context, actor employee.Principal) ([]mission.MissionResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	missions, err := s.missionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return toResponses(missions), nil
}

// ApproveMission implements mission.MissionService.
func (s *MissionServiceImpl) ApproveMission(ctx context.Context, actor employee.Principal, id string) error {
	m, err := s.decidable(ctx, actor, id)
	if err != nil {
		return err
	}

	updated, err := s.missionRepo.UpdateStatus(ctx, id, actor.EmployeeID, mission.MissionStatusApproved)
	if err != nil {
		return err
	}
	if !updated {
		return mission.ErrMissionNotReviewable
	}

	return s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeMissionDecision,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("Your mission %q has been approved.", m.Destination),
	}, m.EmployeeID)
}

// RejectMission implements mission.MissionService.
func (s *MissionServiceImpl) RejectMission(ctx context.Context, actor employee.Principal, id string, req mission.RejectMissionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	m, err := s.decidable(ctx, actor, id)
	if err != nil {
		return err
	}

	updated, err := s.missionRepo.UpdateStatus(ctx, id, actor.EmployeeID, mission.MissionStatusRejected)
	if err != nil {
		return err
	}
	if !updated {
		return mission.ErrMissionNotReviewable
	}

	return s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeMissionDecision,
		Urgency:  notification.UrgencyHigh,
		Message:  fmt.Sprintf("Your mission %q has been rejected: %s", m.Destination, req.Reason),
	}, m.EmployeeID)
}

// decidable loads the mission and checks the reviewer and status rules.
// Only the assigned manager may decide, elevated roles get no bypass here.
func (s *MissionServiceImpl) decidable(ctx context.Context, actor employee.Principal, id string) (mission.Mission, error) {
	m, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		return mission.Mission{}, err
	}

	if m.ManagerID == nil || *m.ManagerID != actor.EmployeeID {
		return mission.Mission{}, mission.ErrMissionNotReviewer
	}
	if !m.Status.Reviewable() {
		return mission.Mission{}, mission.ErrMissionNotReviewable
	}
	return m, nil
}

func toResponses(missions []mission.Mission) []mission.MissionResponse {
	responses := make([]mission.MissionResponse, 0, len(missions))
	for _, m := range missions {
		responses = append(responses, mission.ToMissionResponse(m))
	}
	return responses
}
