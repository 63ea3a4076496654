package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or national id")
	ErrNationalIDNotSet       = errors.New("national id not set, complete first-time login")
	ErrNationalIDAlreadySet   = errors.New("national id has already been set")
	ErrAccountInactive        = errors.New("account is deactivated")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked    = errors.New("refresh token has been revoked")
	ErrEmailAlreadyRegistered = errors.New("an account with this email already exists")
	ErrRoleNotSelfAssignable  = errors.New("role cannot be chosen at self-registration")
)
