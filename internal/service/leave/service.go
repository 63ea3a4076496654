package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	"github.com/peopleworks/hrms-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db                  *database.DB
	leaveTypeRepo       leave.LeaveTypeRepository
	leavePolicyRepo     leave.LeavePolicyRepository
	entitlementRepo     leave.LeaveEntitlementRepository
	requestRepo         leave.LeaveRequestRepository
	documentRepo        leave.LeaveDocumentRepository
	syncRepo            leave.LeaveSyncRepository
	employeeRepo        employee.EmployeeRepository
	fileService         file.FileService
	notificationService notification.Service
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	leavePolicyRepo leave.LeavePolicyRepository,
	entitlementRepo leave.LeaveEntitlementRepository,
	requestRepo leave.LeaveRequestRepository,
	documentRepo leave.LeaveDocumentRepository,
	syncRepo leave.LeaveSyncRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	notificationService notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                  db,
		leaveTypeRepo:       leaveTypeRepo,
		leavePolicyRepo:     leavePolicyRepo,
		entitlementRepo:     entitlementRepo,
		requestRepo:         requestRepo,
		documentRepo:        documentRepo,
		syncRepo:            syncRepo,
		employeeRepo:        employeeRepo,
		fileService:         fileService,
		notificationService: notificationService,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, actor employee.Principal, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if !actor.Elevated() {
		return leave.LeaveType{}, leave.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	return l.leaveTypeRepo.Create(ctx, leave.LeaveType{
		Name:        req.Name,
		Description: req.Description,
	})
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return l.leaveTypeRepo.List(ctx)
}

// CreateLeavePolicy implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeavePolicy(ctx context.Context, actor employee.Principal, req leave.CreateLeavePolicyRequest) (leave.LeavePolicy, error) {
	if !actor.Elevated() {
		return leave.LeavePolicy{}, leave.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return leave.LeavePolicy{}, err
	}

	if _, err := l.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeavePolicy{}, err
	}

	return l.leavePolicyRepo.Create(ctx, leave.LeavePolicy{
		LeaveTypeID: req.LeaveTypeID,
		Name:        req.Name,
		AnnualDays:  req.AnnualDays,
		Description: req.Description,
	})
}

// ListLeavePolicies implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeavePolicies(ctx context.Context) ([]leave.LeavePolicy, error) {
	return l.leavePolicyRepo.List(ctx)
}

// AssignEntitlement implements leave.LeaveService.
func (l *LeaveServiceImpl) AssignEntitlement(ctx context.Context, actor employee.Principal, req leave.AssignEntitlementRequest) (leave.EntitlementResponse, error) {
	if !actor.Elevated() {
		return leave.EntitlementResponse{}, leave.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return leave.EntitlementResponse{}, err
	}

	if _, err := l.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.EntitlementResponse{}, err
	}
	if _, err := l.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.EntitlementResponse{}, err
	}

	entitlement, err := l.entitlementRepo.Upsert(ctx, req.EmployeeID, req.LeaveTypeID, req.Days)
	if err != nil {
		return leave.EntitlementResponse{}, fmt.Errorf("failed to assign entitlement: %w", err)
	}
	return leave.ToEntitlementResponse(entitlement), nil
}

// AdjustEntitlement implements leave.LeaveService.
func (l *LeaveServiceImpl) AdjustEntitlement(ctx context.Context, actor employee.Principal, req leave.AdjustEntitlementRequest) error {
	if !actor.Elevated() {
		return leave.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := l.entitlementRepo.GetByEmployeeAndType(ctx, req.EmployeeID, req.LeaveTypeID); err != nil {
		return err
	}

	return l.entitlementRepo.AddDays(ctx, req.EmployeeID, req.LeaveTypeID, req.DeltaDays)
}

// GetMyEntitlements implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyEntitlements(ctx context.Context, actor employee.Principal) ([]leave.EntitlementResponse, error) {
	return l.entitlements(ctx, actor.EmployeeID)
}

// GetEntitlements implements leave.LeaveService.
func (l *LeaveServiceImpl) GetEntitlements(ctx context.Context, actor employee.Principal, employeeID string) ([]leave.EntitlementResponse, error) {
	if actor.EmployeeID != employeeID && !actor.Elevated() {
		if ok, err := l.isManagerOf(ctx, actor.EmployeeID, employeeID); err != nil {
			return nil, err
		} else if !ok {
			return nil, leave.ErrAccessDenied
		}
	}
	return l.entitlements(ctx, employeeID)
}

func (l *LeaveServiceImpl) entitlements(ctx context.Context, employeeID string) ([]leave.EntitlementResponse, error) {
	entitlements, err := l.entitlementRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlements: %w", err)
	}

	responses := make([]leave.EntitlementResponse, 0, len(entitlements))
	for _, e := range entitlements {
		responses = append(responses, leave.ToEntitlementResponse(e))
	}
	return responses, nil
}

// SubmitLeaveRequest implements leave.LeaveService. The request, its
// attachments and their storage uploads are committed together.
func (l *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, actor employee.Principal, req leave.SubmitLeaveRequest, attachments []leave.Attachment) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := l.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	var created leave.LeaveRequest
	err := postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = l.requestRepo.Create(txCtx, leave.LeaveRequest{
			EmployeeID:    actor.EmployeeID,
			LeaveTypeID:   req.LeaveTypeID,
			StartDate:     start,
			EndDate:       end,
			DurationDays:  leave.DurationDays(start, end),
			Justification: req.Justification,
			Status:        leave.LeaveRequestStatusPending,
		})
		if err != nil {
			return err
		}

		for _, attachment := range attachments {
			path, err := l.fileService.UploadLeaveAttachment(txCtx, created.ID, attachment.Content, attachment.FileName)
			if err != nil {
				return err
			}

			doc, err := l.documentRepo.Create(txCtx, leave.LeaveDocument{
				LeaveRequestID: created.ID,
				FileName:       attachment.FileName,
				FilePath:       path,
			})
			if err != nil {
				return err
			}
			created.Documents = append(created.Documents, doc)
		}

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.EmployeeName = &actor.FullName
	return leave.ToLeaveRequestResponse(created), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, actor employee.Principal, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := l.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.canAccess(ctx, actor, request.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Documents, err = l.documentRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get documents: %w", err)
	}

	return leave.ToLeaveRequestResponse(request), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, actor employee.Principal) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.requestRepo.GetByEmployeeID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListTeamLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListTeamLeaveRequests(ctx context.Context, actor employee.Principal) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.requestRepo.GetByManagerID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListAllLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAllLeaveRequests(ctx context.Context, actor employee.Principal) ([]leave.LeaveRequestResponse, error) {
	if !actor.Elevated() {
		return nil, leave.ErrAccessDenied
	}

	requests, err := l.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ApproveLeaveRequest implements leave.LeaveService. The status change,
// the entitlement deduction and the attendance projection commit together.
// Only one of two concurrent decisions can win the status guard.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, actor employee.Principal, requestID string) error {
	request, err := l.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := l.canDecide(ctx, actor, request.EmployeeID); err != nil {
		return err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	audit := leave.AuditAnnotation("Appr", actor.EmployeeID, time.Now())
	expect := leave.LeaveRequestStatusPending

	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err := l.requestRepo.UpdateDecision(txCtx, requestID, &expect,
			leave.LeaveRequestStatusApproved, request.Justification, audit)
		if err != nil {
			return err
		}
		if !updated {
			return leave.ErrLeaveAlreadyProcessed
		}

		// The balance may go negative, approval deducts unconditionally.
		if err := l.entitlementRepo.AddDays(txCtx, request.EmployeeID, request.LeaveTypeID, -request.DurationDays); err != nil {
			return err
		}

		return l.syncRepo.SyncLeaveToAttendance(txCtx, requestID)
	})
	if err != nil {
		return err
	}

	return l.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeLeaveDecision,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("Your leave request from %s has been approved.", request.StartDate.Format("2006-01-02")),
	}, request.EmployeeID)
}

// DenyLeaveRequest implements leave.LeaveService. Denial touches neither
// the entitlement nor the attendance projection.
func (l *LeaveServiceImpl) DenyLeaveRequest(ctx context.Context, actor employee.Principal, requestID string, req leave.DenyLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := l.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := l.canDecide(ctx, actor, request.EmployeeID); err != nil {
		return err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	audit := leave.AuditAnnotation("Rej", actor.EmployeeID, time.Now())
	justification := request.Justification + " | Rejection: " + req.Reason
	expect := leave.LeaveRequestStatusPending

	updated, err := l.requestRepo.UpdateDecision(ctx, requestID, &expect,
		leave.LeaveRequestStatusRejected, justification, audit)
	if err != nil {
		return err
	}
	if !updated {
		return leave.ErrLeaveAlreadyProcessed
	}

	return l.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeLeaveDecision,
		Urgency:  notification.UrgencyHigh,
		Message:  fmt.Sprintf("Your leave request from %s has been rejected: %s", request.StartDate.Format("2006-01-02"), req.Reason),
	}, request.EmployeeID)
}

// OverrideLeaveRequest implements leave.LeaveService. HR may force any
// status. A forced approval re-runs the attendance projection but never
// restores or deducts entitlement days.
func (l *LeaveServiceImpl) OverrideLeaveRequest(ctx context.Context, actor employee.Principal, requestID string, req leave.OverrideLeaveRequest) error {
	if !actor.Elevated() {
		return leave.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := l.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	newStatus := leave.LeaveRequestStatus(req.NewStatus)
	audit := leave.AuditAnnotation("Ovr", actor.EmployeeID, time.Now())
	justification := request.Justification + " | Override: " + req.Reason

	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err := l.requestRepo.UpdateDecision(txCtx, requestID, nil, newStatus, justification, audit)
		if err != nil {
			return err
		}
		if !updated {
			return leave.ErrLeaveRequestNotFound
		}

		if newStatus == leave.LeaveRequestStatusApproved {
			return l.syncRepo.SyncLeaveToAttendance(txCtx, requestID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return l.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeLeaveDecision,
		Urgency:  notification.UrgencyHigh,
		Message:  fmt.Sprintf("Your leave request from %s has been set to %s by HR: %s", request.StartDate.Format("2006-01-02"), req.NewStatus, req.Reason),
	}, request.EmployeeID)
}

// FlagLeavePattern implements leave.LeaveService. A manager records an
// observation about an employee's leave usage, HR is notified.
func (l *LeaveServiceImpl) FlagLeavePattern(ctx context.Context, actor employee.Principal, employeeID string, req leave.FlagLeavePatternRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if !actor.Elevated() {
		ok, err := l.isManagerOf(ctx, actor.EmployeeID, employeeID)
		if err != nil {
			return err
		}
		if !ok {
			return leave.ErrAccessDenied
		}
	}

	emp, err := l.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	return l.notificationService.NotifyHRAdmins(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeLeaveFlag,
		Urgency:  notification.UrgencyHigh,
		Message:  fmt.Sprintf("Leave pattern flagged for %s: %s", emp.FullName, req.Observation),
	})
}

// canAccess allows the request owner, elevated roles, and the owner's
// direct manager.
func (l *LeaveServiceImpl) canAccess(ctx context.Context, actor employee.Principal, ownerID string) error {
	if actor.EmployeeID == ownerID || actor.Elevated() {
		return nil
	}
	ok, err := l.isManagerOf(ctx, actor.EmployeeID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return leave.ErrAccessDenied
	}
	return nil
}

// canDecide allows elevated roles and the owner's direct manager, never
// the owner themselves.
func (l *LeaveServiceImpl) canDecide(ctx context.Context, actor employee.Principal, ownerID string) error {
	if actor.Elevated() {
		return nil
	}
	ok, err := l.isManagerOf(ctx, actor.EmployeeID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return leave.ErrAccessDenied
	}
	return nil
}

// isManagerOf checks the direct reporting line only, the relation is not
// transitive.
func (l *LeaveServiceImpl) isManagerOf(ctx context.Context, managerID, employeeID string) (bool, error) {
	emp, err := l.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return emp.ManagerID != nil && *emp.ManagerID == managerID, nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToLeaveRequestResponse(r))
	}
	return responses
}
