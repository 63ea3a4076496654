package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/auth"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	FirstTimeLogin(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// FirstTimeLogin implements AuthHandler.
func (a *AuthHandlerImpl) FirstTimeLogin(w http.ResponseWriter, r *http.Request) {
	var firstTimeReq auth.FirstTimeLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&firstTimeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := a.authService.FirstTimeLogin(r.Context(), firstTimeReq)
	if err != nil {
		slog.Error("FirstTimeLogin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "National ID set, you are now logged in", tokens)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Created(w, "Account registered", tokens)
}

// RefreshToken implements AuthHandler. The refresh token may arrive in
// the body or as the auth cookie.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest
	_ = json.NewDecoder(r.Body).Decode(&refreshReq)

	if refreshReq.RefreshToken == "" {
		if cookie, err := r.Cookie("refresh_token"); err == nil {
			refreshReq.RefreshToken = cookie.Value
		}
	}

	token, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var refreshReq auth.RefreshTokenRequest
		_ = json.NewDecoder(r.Body).Decode(&refreshReq)
		refreshToken = refreshReq.RefreshToken
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	expired := a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}
