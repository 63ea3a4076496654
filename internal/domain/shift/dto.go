package shift

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name        string  `json:"name"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Description *string `json:"description,omitempty"`
}

func validTimeOfDay(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if validTimeOfDay(r.StartTime) && validTimeOfDay(r.EndTime) && r.StartTime == r.EndTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must differ from start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	ShiftID   string  `json:"shift_id"`
	ValidFrom string  `json:"valid_from"`
	ValidTo   *string `json:"valid_to,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.ValidFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be in YYYY-MM-DD format",
		})
	}
	if r.ValidTo != nil {
		if _, ok := validator.IsValidDate(*r.ValidTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_to",
				Message: "valid_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CustomShiftRequest defines a one-off window for a single employee.
type CustomShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	ValidFrom  string `json:"valid_from"`
	ValidTo    string `json:"valid_to"`
}

func (r *CustomShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidDate(r.ValidFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.ValidTo); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_to",
			Message: "valid_to must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SplitShiftRequest configures two working windows in one day.
type SplitShiftRequest struct {
	EmployeeID  string `json:"employee_id"`
	FirstStart  string `json:"first_start"`
	FirstEnd    string `json:"first_end"`
	SecondStart string `json:"second_start"`
	SecondEnd   string `json:"second_end"`
	ValidFrom   string `json:"valid_from"`
}

func (r *SplitShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	for field, value := range map[string]string{
		"first_start":  r.FirstStart,
		"first_end":    r.FirstEnd,
		"second_start": r.SecondStart,
		"second_end":   r.SecondEnd,
	} {
		if !validTimeOfDay(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}
	if _, ok := validator.IsValidDate(r.ValidFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RotationalShiftRequest cycles an employee through shifts at a fixed
// interval.
type RotationalShiftRequest struct {
	EmployeeID   string   `json:"employee_id"`
	ShiftIDs     []string `json:"shift_ids"`
	IntervalDays int      `json:"interval_days"`
	ValidFrom    string   `json:"valid_from"`
}

func (r *RotationalShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if len(r.ShiftIDs) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_ids",
			Message: "at least two shift_ids are required for a rotation",
		})
	}
	if r.IntervalDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "interval_days",
			Message: "interval_days must be a positive integer",
		})
	}
	if _, ok := validator.IsValidDate(r.ValidFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AssignmentResponse struct {
	ID             string     `json:"id"`
	ShiftID        string     `json:"shift_id"`
	ShiftName      *string    `json:"shift_name,omitempty"`
	EmployeeID     *string    `json:"employee_id,omitempty"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	Kind           string     `json:"kind"`
	ValidFrom      time.Time  `json:"valid_from"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:             a.ID,
		ShiftID:        a.ShiftID,
		ShiftName:      a.ShiftName,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		DepartmentID:   a.DepartmentID,
		DepartmentName: a.DepartmentName,
		Kind:           string(a.Kind),
		ValidFrom:      a.ValidFrom,
		ValidTo:        a.ValidTo,
	}
}
