package attendance

import (
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	LoginMethod string `json:"login_method"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LoginMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "login_method",
			Message: "login_method is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	AttendanceID string `json:"attendance_id"`
	LogoutMethod string `json:"logout_method"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}
	if validator.IsEmpty(r.LogoutMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "logout_method",
			Message: "logout_method is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectionRequestRequest struct {
	AttendanceID *string `json:"attendance_id,omitempty"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
}

func (r *CorrectionRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamSummaryRequest struct {
	Date string `json:"date"`
}

func (r *TeamSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         time.Time  `json:"date"`
	Entry        time.Time  `json:"entry"`
	Exit         *time.Time `json:"exit,omitempty"`
	LoginMethod  string     `json:"login_method"`
	LogoutMethod *string    `json:"logout_method,omitempty"`
	WorkMinutes  *int       `json:"work_minutes,omitempty"`
	Complete     bool       `json:"complete"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date,
		Entry:        a.Entry,
		Exit:         a.Exit,
		LoginMethod:  a.LoginMethod,
		LogoutMethod: a.LogoutMethod,
		WorkMinutes:  a.WorkMinutes,
		Complete:     a.Complete(),
	}
}

type CorrectionResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	AttendanceID *string   `json:"attendance_id,omitempty"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type TeamDaySummaryResponse struct {
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Date         time.Time  `json:"date"`
	Status       string     `json:"status"`
	Entry        *time.Time `json:"entry,omitempty"`
	Exit         *time.Time `json:"exit,omitempty"`
	WorkMinutes  *int       `json:"work_minutes,omitempty"`
}
