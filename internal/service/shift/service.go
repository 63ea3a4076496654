package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/domain/shift"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shiftRepo           shift.ShiftRepository
	assignmentRepo      shift.AssignmentRepository
	employeeRepo        employee.EmployeeRepository
	departmentRepo      employee.DepartmentRepository
	notificationService notification.Service
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
	notificationService notification.Service,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:           shiftRepo,
		assignmentRepo:      assignmentRepo,
		employeeRepo:        employeeRepo,
		departmentRepo:      departmentRepo,
		notificationService: notificationService,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, actor employee.Principal, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if !actor.HasRole(employee.RoleSystemAdmin) {
		return shift.ShiftResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// AssignToEmployee implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignToEmployee(ctx context.Context, actor employee.Principal, employeeID string, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if !actor.Elevated() {
		return shift.AssignmentResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return shift.AssignmentResponse{}, err
	}
	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	validFrom, _ := validator.IsValidDate(req.ValidFrom)
	validTo := optionalDate(req.ValidTo)

	assignment, err := s.assignmentRepo.AssignToEmployee(ctx, req.ShiftID, employeeID, validFrom, validTo)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	_ = s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeShiftAssigned,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("You have been assigned the %s shift (%s-%s) from %s.", sh.Name, sh.StartTime, sh.EndTime, req.ValidFrom),
	}, employeeID)

	assignment.ShiftName = &sh.Name
	return shift.ToAssignmentResponse(assignment), nil
}

// AssignToDepartment implements shift.ShiftService. The whole department
// is covered by one assignment row, no per-employee notifications.
func (s *ShiftServiceImpl) AssignToDepartment(ctx context.Context, actor employee.Principal, departmentID string, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if !actor.Elevated() {
		return shift.AssignmentResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return shift.AssignmentResponse{}, err
	}
	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	validFrom, _ := validator.IsValidDate(req.ValidFrom)
	validTo := optionalDate(req.ValidTo)

	assignment, err := s.assignmentRepo.AssignToDepartment(ctx, req.ShiftID, departmentID, validFrom, validTo)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	assignment.ShiftName = &sh.Name
	return shift.ToAssignmentResponse(assignment), nil
}

// AssignCustom implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignCustom(ctx context.Context, actor employee.Principal, req shift.CustomShiftRequest) (shift.AssignmentResponse, error) {
	if !actor.Elevated() {
		return shift.AssignmentResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	validFrom, _ := validator.IsValidDate(req.ValidFrom)
	validTo, _ := validator.IsValidDate(req.ValidTo)

	assignment, err := s.assignmentRepo.AssignCustom(ctx, req.EmployeeID, req.StartTime, req.EndTime, validFrom, validTo)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	_ = s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeShiftAssigned,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("A custom shift (%s-%s) has been set for you from %s.", req.StartTime, req.EndTime, req.ValidFrom),
	}, req.EmployeeID)

	return shift.ToAssignmentResponse(assignment), nil
}

// ConfigureSplit implements shift.ShiftService.
func (s *ShiftServiceImpl) ConfigureSplit(ctx context.Context, actor employee.Principal, req shift.SplitShiftRequest) error {
	if !actor.Elevated() {
		return employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	validFrom, _ := validator.IsValidDate(req.ValidFrom)

	if err := s.assignmentRepo.ConfigureSplit(ctx, req.EmployeeID,
		req.FirstStart, req.FirstEnd, req.SecondStart, req.SecondEnd, validFrom); err != nil {
		return err
	}

	return s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeShiftAssigned,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("A split shift (%s-%s and %s-%s) has been configured for you.", req.FirstStart, req.FirstEnd, req.SecondStart, req.SecondEnd),
	}, req.EmployeeID)
}

// AssignRotational implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignRotational(ctx context.Context, actor employee.Principal, req shift.RotationalShiftRequest) error {
	if !actor.Elevated() {
		return employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	for _, shiftID := range req.ShiftIDs {
		if _, err := s.shiftRepo.GetByID(ctx, shiftID); err != nil {
			return err
		}
	}

	validFrom, _ := validator.IsValidDate(req.ValidFrom)

	if err := s.assignmentRepo.AssignRotational(ctx, req.EmployeeID, req.ShiftIDs, req.IntervalDays, validFrom); err != nil {
		return err
	}

	return s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeShiftAssigned,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("You have been placed on a %d-day shift rotation from %s.", req.IntervalDays, req.ValidFrom),
	}, req.EmployeeID)
}

// GetMyAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) GetMyAssignments(ctx context.Context, actor employee.Principal) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.GetByEmployeeID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

// ListAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, actor employee.Principal) ([]shift.AssignmentResponse, error) {
	if !actor.HasRole(employee.RoleSystemAdmin) {
		return nil, employee.ErrAccessDenied
	}

	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:          sh.ID,
		Name:        sh.Name,
		StartTime:   sh.StartTime,
		EndTime:     sh.EndTime,
		Description: sh.Description,
		CreatedAt:   sh.CreatedAt,
	}
}

func toAssignmentResponses(assignments []shift.Assignment) []shift.AssignmentResponse {
	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, shift.ToAssignmentResponse(a))
	}
	return responses
}

func optionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &d
}
