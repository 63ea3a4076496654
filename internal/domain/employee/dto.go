package employee

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	PhoneNumber  *string  `json:"phone_number,omitempty"`
	JobTitle     *string  `json:"job_title,omitempty"`
	DepartmentID *string  `json:"department_id,omitempty"`
	ManagerID    *string  `json:"manager_id,omitempty"`
	Roles        []string `json:"roles,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}

	for _, role := range r.Roles {
		if !IsValidRole(role) {
			errs = append(errs, validator.ValidationError{
				Field:   "roles",
				Message: "unknown role: " + role,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest carries the fields an employee may change on their
// own record.
type UpdateProfileRequest struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries the fields HR may change on any record.
type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReassignEmployeeRequest struct {
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

func (r *ReassignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DepartmentID == nil && r.ManagerID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "at least one of department_id or manager_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of the catalog roles",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	PhoneNumber       *string    `json:"phone_number,omitempty"`
	Address           *string    `json:"address,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            *string    `json:"gender,omitempty"`
	JobTitle          *string    `json:"job_title,omitempty"`
	ProfileImageURL   *string    `json:"profile_image_url,omitempty"`
	DepartmentID      *string    `json:"department_id,omitempty"`
	DepartmentName    *string    `json:"department_name,omitempty"`
	ManagerID         *string    `json:"manager_id,omitempty"`
	ManagerName       *string    `json:"manager_name,omitempty"`
	IsActive          bool       `json:"is_active"`
	ProfileCompletion int        `json:"profile_completion"`
	Roles             []string   `json:"roles"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		FullName:          e.FullName,
		Email:             e.Email,
		PhoneNumber:       e.PhoneNumber,
		Address:           e.Address,
		DateOfBirth:       e.DateOfBirth,
		Gender:            e.Gender,
		JobTitle:          e.JobTitle,
		ProfileImageURL:   e.ProfileImageURL,
		DepartmentID:      e.DepartmentID,
		DepartmentName:    e.DepartmentName,
		ManagerID:         e.ManagerID,
		ManagerName:       e.ManagerName,
		IsActive:          e.IsActive,
		ProfileCompletion: e.ProfileCompletion,
		Roles:             e.RoleNames(),
		CreatedAt:         e.CreatedAt,
	}
}

type HierarchyNodeResponse struct {
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	JobTitle       *string `json:"job_title,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	ManagerName    *string `json:"manager_name,omitempty"`
	TeamSize       int     `json:"team_size"`
}
