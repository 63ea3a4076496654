package auth

import "github.com/peopleworks/hrms-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// National ID
	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	} else if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must be 6-20 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// FirstTimeLoginRequest sets the national id on an account that has never
// logged in, then authenticates with it.
type FirstTimeLoginRequest struct {
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
}

func (r *FirstTimeLoginRequest) Validate() error {
	req := LoginRequest{Email: r.Email, NationalID: r.NationalID}
	return req.Validate()
}

// RegisterRequest is the self-registration payload. The chosen role is
// restricted to the self-service subset of the catalog.
type RegisterRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	Role       string `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Full name
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

	// Email
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// National ID
	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must be 6-20 digits",
		})
	}

	// Role
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
