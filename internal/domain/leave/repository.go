package leave

import (
	"context"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

// LeavePolicyRepository - interface for leave_policies table
type LeavePolicyRepository interface {
	Create(ctx context.Context, policy LeavePolicy) (LeavePolicy, error)
	GetByID(ctx context.Context, id string) (LeavePolicy, error)
	List(ctx context.Context) ([]LeavePolicy, error)
}

// LeaveEntitlementRepository - interface for leave_entitlements table
type LeaveEntitlementRepository interface {
	Upsert(ctx context.Context, employeeID, leaveTypeID string, days int) (LeaveEntitlement, error)
	GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (LeaveEntitlement, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveEntitlement, error)
	// AddDays applies a signed delta to the remaining balance. The balance
	// may go negative.
	AddDays(ctx context.Context, employeeID, leaveTypeID string, delta int) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetByManagerID(ctx context.Context, managerID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	// UpdateDecision sets status, justification and the audit annotation in
	// one statement and reports whether a row with the expected prior
	// status was updated.
	UpdateDecision(ctx context.Context, id string, expectStatus *LeaveRequestStatus, newStatus LeaveRequestStatus, justification, audit string) (bool, error)
}

// LeaveDocumentRepository - interface for leave_documents table
type LeaveDocumentRepository interface {
	Create(ctx context.Context, doc LeaveDocument) (LeaveDocument, error)
	GetByRequestID(ctx context.Context, requestID string) ([]LeaveDocument, error)
}

// LeaveSyncRepository invokes the attendance projection for approved leave.
type LeaveSyncRepository interface {
	SyncLeaveToAttendance(ctx context.Context, leaveRequestID string) error
}
