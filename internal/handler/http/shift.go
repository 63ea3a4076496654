package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/shift"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	AssignToEmployee(w http.ResponseWriter, r *http.Request)
	AssignToDepartment(w http.ResponseWriter, r *http.Request)
	AssignCustom(w http.ResponseWriter, r *http.Request)
	ConfigureSplit(w http.ResponseWriter, r *http.Request)
	AssignRotational(w http.ResponseWriter, r *http.Request)
	GetMyAssignments(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// CreateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateShift(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created", created)
}

// ListShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// AssignToEmployee implements ShiftHandler.
func (h *ShiftHandlerImpl) AssignToEmployee(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.shiftService.AssignToEmployee(r.Context(), principal, chi.URLParam(r, "employeeID"), req)
	if err != nil {
		slog.Error("AssignToEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift assigned", assignment)
}

// AssignToDepartment implements ShiftHandler.
func (h *ShiftHandlerImpl) AssignToDepartment(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.shiftService.AssignToDepartment(r.Context(), principal, chi.URLParam(r, "departmentID"), req)
	if err != nil {
		slog.Error("AssignToDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift assigned to department", assignment)
}

// AssignCustom implements ShiftHandler.
func (h *ShiftHandlerImpl) AssignCustom(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CustomShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.shiftService.AssignCustom(r.Context(), principal, req)
	if err != nil {
		slog.Error("AssignCustom service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Custom shift assigned", assignment)
}

// ConfigureSplit implements ShiftHandler.
func (h *ShiftHandlerImpl) ConfigureSplit(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.SplitShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.shiftService.ConfigureSplit(r.Context(), principal, req); err != nil {
		slog.Error("ConfigureSplit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Split shift configured", nil)
}

// AssignRotational implements ShiftHandler.
func (h *ShiftHandlerImpl) AssignRotational(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.RotationalShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.shiftService.AssignRotational(r.Context(), principal, req); err != nil {
		slog.Error("AssignRotational service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Rotational shift assigned", nil)
}

// GetMyAssignments implements ShiftHandler.
func (h *ShiftHandlerImpl) GetMyAssignments(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.shiftService.GetMyAssignments(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}

// ListAssignments implements ShiftHandler.
func (h *ShiftHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.shiftService.ListAssignments(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}
