package response

import (
	"errors"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleworks/hrms-backend-go/internal/domain/auth"
	"github.com/peopleworks/hrms-backend-go/internal/domain/contract"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/domain/mission"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/domain/shift"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or national ID")
	case errors.Is(err, auth.ErrNationalIDNotSet):
		Forbidden(w, "National ID not set, complete first-time login")
	case errors.Is(err, auth.ErrNationalIDAlreadySet):
		Conflict(w, "National ID has already been set")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyRegistered):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrRoleNotSelfAssignable):
		Forbidden(w, "Role cannot be chosen at self-registration")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, employee.ErrRoleAlreadyAssigned):
		Conflict(w, "Role already assigned")
	case errors.Is(err, employee.ErrCannotDeactivateSelf):
		BadRequest(w, "You cannot deactivate your own account", nil)
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeavePolicyNotFound):
		NotFound(w, "Leave policy not found")
	case errors.Is(err, leave.ErrEntitlementNotFound):
		NotFound(w, "Leave entitlement not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Mission domain errors
	case errors.Is(err, mission.ErrMissionNotFound):
		NotFound(w, "Mission not found")
	case errors.Is(err, mission.ErrMissionNotReviewer):
		Forbidden(w, "Only the assigned manager may decide this mission")
	case errors.Is(err, mission.ErrMissionNotReviewable):
		Conflict(w, "Mission is not awaiting review")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceComplete):
		Conflict(w, "Attendance for today is already complete")
	case errors.Is(err, attendance.ErrAttendanceNotOpen):
		Conflict(w, "No open attendance record to clock out of")
	case errors.Is(err, attendance.ErrAttendanceNotOwned):
		Forbidden(w, "Attendance record belongs to another employee")
	case errors.Is(err, attendance.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrContractNotActive):
		Conflict(w, "Contract is not active")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
