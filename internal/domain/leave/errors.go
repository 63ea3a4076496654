package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrLeavePolicyNotFound   = errors.New("leave policy not found")
	ErrEntitlementNotFound   = errors.New("leave entitlement not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been processed")
	ErrInvalidLeaveRange     = errors.New("end date must not be before start date")
	ErrInvalidStatus         = errors.New("unknown leave request status")
	ErrNegativeEntitlement   = errors.New("entitlement days must not be negative")
	ErrAccessDenied          = errors.New("access denied")
)
