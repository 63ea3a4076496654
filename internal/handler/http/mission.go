package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/mission"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MissionHandler interface {
	AssignMission(w http.ResponseWriter, r *http.Request)
	GetMission(w http.ResponseWriter, r *http.Request)
	ListMyMissions(w http.ResponseWriter, r *http.Request)
	ListTeamMissions(w http.ResponseWriter, r *http.Request)
	ListAllMissions(w http.ResponseWriter, r *http.Request)
	ApproveMission(w http.ResponseWriter, r *http.Request)
	RejectMission(w http.ResponseWriter, r *http.Request)
}

type MissionHandlerImpl struct {
	missionService mission.MissionService
}

func NewMissionHandler(missionService mission.MissionService) MissionHandler {
	return &MissionHandlerImpl{missionService: missionService}
}

// AssignMission implements MissionHandler.
func (h *MissionHandlerImpl) AssignMission(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req mission.AssignMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	m, err := h.missionService.AssignMission(r.Context(), principal, req)
	if err != nil {
		slog.Error("AssignMission service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Mission assigned", m)
}

// GetMission implements MissionHandler.
func (h *MissionHandlerImpl) GetMission(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.missionService.GetMission(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, m)
}

// ListMyMissions implements MissionHandler.
func (h *MissionHandlerImpl) ListMyMissions(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	missions, err := h.missionService.ListMyMissions(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, missions)
}

// ListTeamMissions implements MissionHandler.
func (h *MissionHandlerImpl) ListTeamMissions(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	missions, err := h.missionService.ListTeamMissions(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, missions)
}

// ListAllMissions implements MissionHandler.
func (h *MissionHandlerImpl) ListAllMissions(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	missions, err := h.missionService.ListAllMissions(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, missions)
}

// ApproveMission implements MissionHandler.
func (h *MissionHandlerImpl) ApproveMission(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.missionService.ApproveMission(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		slog.Error("ApproveMission service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mission approved", nil)
}

// RejectMission implements MissionHandler.
func (h *MissionHandlerImpl) RejectMission(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req mission.RejectMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.missionService.RejectMission(r.Context(), principal, chi.URLParam(r, "id"), req); err != nil {
		slog.Error("RejectMission service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mission rejected", nil)
}
