package contract

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"contract_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type is required",
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
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RenewContractRequest struct {
	Type      string `json:"contract_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RenewContractRequest) Validate() error {
	req := CreateContractRequest{
		EmployeeID: "renewal", // employee comes from the expiring contract
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
	return req.Validate()
}

type ContractResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Type         string    `json:"contract_type"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	DaysUntilEnd int       `json:"days_until_end"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToContractResponse(c Contract, now time.Time) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		EmployeeName: c.EmployeeName,
		Type:         c.Type,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Status:       string(c.Status),
		DaysUntilEnd: c.DaysUntilExpiry(now),
		CreatedAt:    c.CreatedAt,
	}
}
