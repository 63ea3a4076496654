package mission

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type AssignMissionRequest struct {
	EmployeeID  string  `json:"employee_id"`
	ManagerID   *string `json:"manager_id,omitempty"`
	Destination string  `json:"destination"`
	Description *string `json:"description,omitempty"`
	Purpose     *string `json:"purpose,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

func (r *AssignMissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Destination) {
		errs = append(errs, validator.ValidationError{
			Field:   "destination",
			Message: "destination is required",
		})
	}
	if len(r.Destination) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "destination",
			Message: "destination must not exceed 255 characters",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectMissionRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectMissionRequest) Validate() error {
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

type MissionResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	ManagerName  *string   `json:"manager_name,omitempty"`
	Destination  string    `json:"destination"`
	Description  *string   `json:"description,omitempty"`
	Purpose      *string   `json:"purpose,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToMissionResponse(m Mission) MissionResponse {
	return MissionResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		ManagerID:    m.ManagerID,
		ManagerName:  m.ManagerName,
		Destination:        m.Destination,
		Description:  m.Description,
		Purpose:      m.Purpose,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
