package leave

import (
	"fmt"
	"time"
)

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeavePolicy is advisory metadata attached to a leave type. It does not
// gate submission or approval.
type LeavePolicy struct {
	ID          string
	LeaveTypeID string
	Name        string
	AnnualDays  int
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LeaveTypeName *string
}

// LeaveEntitlement is the remaining balance per employee and leave type.
// Approval deducts from it unconditionally, the balance may go negative.
type LeaveEntitlement struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	RemainingDays int
	UpdatedAt     time.Time

	LeaveTypeName *string
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "Rejected"
	LeaveRequestStatusFinalized LeaveRequestStatus = "Finalized"
)

// IsValidStatus reports whether s names a known request status.
func IsValidStatus(s string) bool {
	switch LeaveRequestStatus(s) {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved,
		LeaveRequestStatusRejected, LeaveRequestStatusFinalized:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	StartDate     time.Time
	EndDate       time.Time
	DurationDays  int
	Justification string
	Status        LeaveRequestStatus

	// ApprovalAudit records the last decision, e.g. "Appr by <id> <date>",
	// capped at maxAuditLen characters.
	ApprovalAudit *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads that join related tables
	EmployeeName  *string
	LeaveTypeName *string
	Documents     []LeaveDocument
}

// LeaveDocument is a stored attachment on a leave request.
type LeaveDocument struct {
	ID             string
	LeaveRequestID string
	FileName       string
	FilePath       string
	UploadedAt     time.Time
}

const maxAuditLen = 50

// DurationDays returns the inclusive day span of a leave. A single-day
// leave counts as 1.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// AuditAnnotation builds the decision audit string and truncates it to the
// column capacity.
func AuditAnnotation(verb, actorID string, at time.Time) string {
	s := fmt.Sprintf("%s by %s %s", verb, actorID, at.Format("2006-01-02"))
	if len(s) > maxAuditLen {
		s = s[:maxAuditLen]
	}
	return s
}

// AttachmentKey returns the storage key for a leave attachment.
func AttachmentKey(requestID, fileName string) string {
	return fmt.Sprintf("leave/leave_%s_%s", requestID, fileName)
}
