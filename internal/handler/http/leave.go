package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	CreateLeavePolicy(w http.ResponseWriter, r *http.Request)
	ListLeavePolicies(w http.ResponseWriter, r *http.Request)
	AssignEntitlement(w http.ResponseWriter, r *http.Request)
	AdjustEntitlement(w http.ResponseWriter, r *http.Request)
	GetMyEntitlements(w http.ResponseWriter, r *http.Request)
	GetEntitlements(w http.ResponseWriter, r *http.Request)
	SubmitLeaveRequest(w http.ResponseWriter, r *http.Request)
	GetLeaveRequest(w http.ResponseWriter, r *http.Request)
	ListMyLeaveRequests(w http.ResponseWriter, r *http.Request)
	ListTeamLeaveRequests(w http.ResponseWriter, r *http.Request)
	ListAllLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeaveRequest(w http.ResponseWriter, r *http.Request)
	DenyLeaveRequest(w http.ResponseWriter, r *http.Request)
	OverrideLeaveRequest(w http.ResponseWriter, r *http.Request)
	FlagLeavePattern(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created", leaveType)
}

// ListLeaveTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	leaveTypes, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaveTypes)
}

// CreateLeavePolicy implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeavePolicy(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeavePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	policy, err := h.leaveService.CreateLeavePolicy(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave policy created", policy)
}

// ListLeavePolicies implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeavePolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.leaveService.ListLeavePolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, policies)
}

// AssignEntitlement implements LeaveHandler.
func (h *LeaveHandlerImpl) AssignEntitlement(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.AssignEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entitlement, err := h.leaveService.AssignEntitlement(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Entitlement assigned", entitlement)
}

// AdjustEntitlement implements LeaveHandler.
func (h *LeaveHandlerImpl) AdjustEntitlement(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.AdjustEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.AdjustEntitlement(r.Context(), principal, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Entitlement adjusted", nil)
}

// GetMyEntitlements implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyEntitlements(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entitlements, err := h.leaveService.GetMyEntitlements(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entitlements)
}

// GetEntitlements implements LeaveHandler.
func (h *LeaveHandlerImpl) GetEntitlements(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entitlements, err := h.leaveService.GetEntitlements(r.Context(), principal, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entitlements)
}

// SubmitLeaveRequest implements LeaveHandler. The submission is multipart,
// a "payload" JSON field plus any number of "attachments" file parts.
func (h *LeaveHandlerImpl) SubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
		response.BadRequest(w, "Invalid payload field", nil)
		return
	}

	var attachments []leave.Attachment
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["attachments"] {
			file, err := header.Open()
			if err != nil {
				response.BadRequest(w, "Unreadable attachment", nil)
				return
			}
			defer file.Close()
			attachments = append(attachments, leave.Attachment{
				FileName: header.Filename,
				Content:  file,
			})
		}
	}

	request, err := h.leaveService.SubmitLeaveRequest(r.Context(), principal, req, attachments)
	if err != nil {
		slog.Error("SubmitLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", request)
}

// GetLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.GetLeaveRequest(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, request)
}

// ListMyLeaveRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListMyLeaveRequests(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListTeamLeaveRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTeamLeaveRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListTeamLeaveRequests(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListAllLeaveRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAllLeaveRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListAllLeaveRequests(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ApproveLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.ApproveLeaveRequest(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		slog.Error("ApproveLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// DenyLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) DenyLeaveRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.DenyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.DenyLeaveRequest(r.Context(), principal, chi.URLParam(r, "id"), req); err != nil {
		slog.Error("DenyLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request denied", nil)
}

// OverrideLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) OverrideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.OverrideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.OverrideLeaveRequest(r.Context(), principal, chi.URLParam(r, "id"), req); err != nil {
		slog.Error("OverrideLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request overridden", nil)
}

// FlagLeavePattern implements LeaveHandler.
func (h *LeaveHandlerImpl) FlagLeavePattern(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.FlagLeavePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.FlagLeavePattern(r.Context(), principal, chi.URLParam(r, "employeeID"), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave pattern flagged", nil)
}
