package leave

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name        string  `json:"leave_type_name"`
	Description *string `json:"leave_type_description,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeavePolicyRequest struct {
	LeaveTypeID string  `json:"leave_type_id"`
	Name        string  `json:"policy_name"`
	AnnualDays  int     `json:"annual_days"`
	Description *string `json:"policy_description,omitempty"`
}

func (r *CreateLeavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "policy_name",
			Message: "policy_name is required",
		})
	}
	if r.AnnualDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_days",
			Message: "annual_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignEntitlementRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Days        int    `json:"days"`
}

func (r *AssignEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustEntitlementRequest adds (or with a negative delta subtracts) days
// on an existing entitlement.
type AdjustEntitlementRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	DeltaDays   int    `json:"delta_days"`
}

func (r *AdjustEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.DeltaDays == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta_days",
			Message: "delta_days must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitLeaveRequest struct {
	LeaveTypeID   string `json:"leave_type_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Justification string `json:"justification"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DenyLeaveRequest struct {
	Reason string `json:"reason"`
}

func (r *DenyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OverrideLeaveRequest struct {
	NewStatus string `json:"new_status"`
	Reason    string `json:"reason"`
}

func (r *OverrideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.NewStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_status",
			Message: "new_status must be one of Pending, Approved, Rejected, Finalized",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FlagLeavePatternRequest struct {
	Observation string `json:"observation"`
}

func (r *FlagLeavePatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Observation) {
		errs = append(errs, validator.ValidationError{
			Field:   "observation",
			Message: "observation is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID            string                  `json:"id"`
	EmployeeID    string                  `json:"employee_id"`
	EmployeeName  *string                 `json:"employee_name,omitempty"`
	LeaveTypeID   string                  `json:"leave_type_id"`
	LeaveTypeName *string                 `json:"leave_type_name,omitempty"`
	StartDate     time.Time               `json:"start_date"`
	EndDate       time.Time               `json:"end_date"`
	DurationDays  int                     `json:"duration_days"`
	Justification string                  `json:"justification"`
	Status        string                  `json:"status"`
	ApprovalAudit *string                 `json:"approval_audit,omitempty"`
	Documents     []LeaveDocumentResponse `json:"documents,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

type LeaveDocumentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func ToLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		EmployeeName:  lr.EmployeeName,
		LeaveTypeID:   lr.LeaveTypeID,
		LeaveTypeName: lr.LeaveTypeName,
		StartDate:     lr.StartDate,
		EndDate:       lr.EndDate,
		DurationDays:  lr.DurationDays,
		Justification: lr.Justification,
		Status:        string(lr.Status),
		ApprovalAudit: lr.ApprovalAudit,
		CreatedAt:     lr.CreatedAt,
	}
	for _, doc := range lr.Documents {
		resp.Documents = append(resp.Documents, LeaveDocumentResponse{
			ID:         doc.ID,
			FileName:   doc.FileName,
			FilePath:   doc.FilePath,
			UploadedAt: doc.UploadedAt,
		})
	}
	return resp
}

type EntitlementResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveTypeID   string    `json:"leave_type_id"`
	LeaveTypeName *string   `json:"leave_type_name,omitempty"`
	RemainingDays int       `json:"remaining_days"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToEntitlementResponse(e LeaveEntitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		LeaveTypeID:   e.LeaveTypeID,
		LeaveTypeName: e.LeaveTypeName,
		RemainingDays: e.RemainingDays,
		UpdatedAt:     e.UpdatedAt,
	}
}
