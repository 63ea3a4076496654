package leave

import (
	"context"
	"io"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

// Attachment is an uploaded file accompanying a leave submission.
type Attachment struct {
	FileName string
	Content  io.Reader
}

type LeaveService interface {
	// Catalog (HR Admin+)
	CreateLeaveType(ctx context.Context, actor employee.Principal, req CreateLeaveTypeRequest) (LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	CreateLeavePolicy(ctx context.Context, actor employee.Principal, req CreateLeavePolicyRequest) (LeavePolicy, error)
	ListLeavePolicies(ctx context.Context) ([]LeavePolicy, error)

	// Entitlements
	AssignEntitlement(ctx context.Context, actor employee.Principal, req AssignEntitlementRequest) (EntitlementResponse, error)
	AdjustEntitlement(ctx context.Context, actor employee.Principal, req AdjustEntitlementRequest) error
	GetMyEntitlements(ctx context.Context, actor employee.Principal) ([]EntitlementResponse, error)
	GetEntitlements(ctx context.Context, actor employee.Principal, employeeID string) ([]EntitlementResponse, error)

	// Requests
	SubmitLeaveRequest(ctx context.Context, actor employee.Principal, req SubmitLeaveRequest, attachments []Attachment) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, actor employee.Principal, requestID string) (LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, actor employee.Principal) ([]LeaveRequestResponse, error)
	ListTeamLeaveRequests(ctx context.Context, actor employee.Principal) ([]LeaveRequestResponse, error)
	ListAllLeaveRequests(ctx context.Context, actor employee.Principal) ([]LeaveRequestResponse, error)

	// Decisions
	ApproveLeaveRequest(ctx context.Context, actor employee.Principal, requestID string) error
	DenyLeaveRequest(ctx context.Context, actor employee.Principal, requestID string, req DenyLeaveRequest) error
	OverrideLeaveRequest(ctx context.Context, actor employee.Principal, requestID string, req OverrideLeaveRequest) error
	FlagLeavePattern(ctx context.Context, actor employee.Principal, employeeID string, req FlagLeavePatternRequest) error
}
