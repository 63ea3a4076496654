package auth

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/auth"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/jwt"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	roleRepo     employee.RoleRepository
	jwtService   jwt.Service
}

func NewAuthService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	roleRepo employee.RoleRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. The national id doubles as the
// password and is only ever compared against its bcrypt hash.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if emp.NationalIDHash == nil {
		return auth.TokenResponse{}, auth.ErrNationalIDNotSet
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.NationalIDHash), []byte(req.NationalID)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, emp)
}

// FirstTimeLogin implements auth.AuthService. It hashes and stores the
// national id on an account that has never logged in, then issues tokens.
func (a *AuthServiceImpl) FirstTimeLogin(ctx context.Context, req auth.FirstTimeLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if emp.NationalIDHash != nil {
		return auth.TokenResponse{}, auth.ErrNationalIDAlreadySet
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NationalID), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash national id: %w", err)
	}

	if err := a.employeeRepo.SetNationalIDHash(ctx, emp.ID, string(hash)); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to set national id: %w", err)
	}

	return a.issueTokens(ctx, emp)
}

// Register implements auth.AuthService. Self-registration is limited to
// the administrative roles, plain employee accounts are provisioned by HR.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role := employee.Role(req.Role)
	selfAssignable := false
	for _, r := range employee.SelfRegisterRoles() {
		if r == role {
			selfAssignable = true
			break
		}
	}
	if !selfAssignable {
		return auth.TokenResponse{}, auth.ErrRoleNotSelfAssignable
	}

	exists, err := a.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NationalID), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash national id: %w", err)
	}
	hashStr := string(hash)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = a.employeeRepo.Create(txCtx, employee.Employee{
			FullName:       req.FullName,
			Email:          req.Email,
			NationalIDHash: &hashStr,
			IsActive:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		if err := a.roleRepo.Assign(txCtx, created.ID, role); err != nil {
			return fmt.Errorf("failed to assign role: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	created.Roles = []employee.Role{role}
	return a.issueTokens(ctx, created)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	employeeID, ok := token.Get("employee_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID.(string))
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	emp.Roles, err = a.roleRepo.GetRoles(ctx, emp.ID)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get roles: %w", err)
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(emp.ID, emp.FullName, emp.Email, emp.RoleNames())
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenResponse, error) {
	if emp.Roles == nil {
		roles, err := a.roleRepo.GetRoles(ctx, emp.ID)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to get roles: %w", err)
		}
		emp.Roles = roles
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(emp.ID, emp.FullName, emp.Email, emp.RoleNames())
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
