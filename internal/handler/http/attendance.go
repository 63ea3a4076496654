package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	SubmitCorrection(w http.ResponseWriter, r *http.Request)
	ListMyCorrections(w http.ResponseWriter, r *http.Request)
	GetTeamSummary(w http.ResponseWriter, r *http.Request)
	SyncOfflineAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), principal, req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked in", record)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), principal, req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", record)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.GetMyAttendance(r.Context(), principal,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// SubmitCorrection implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitCorrection(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CorrectionRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	correction, err := h.attendanceService.SubmitCorrection(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Correction submitted", correction)
}

// ListMyCorrections implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMyCorrections(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	corrections, err := h.attendanceService.ListMyCorrections(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, corrections)
}

// GetTeamSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.TeamSummaryRequest{Date: r.URL.Query().Get("date")}
	summary, err := h.attendanceService.GetTeamSummary(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// SyncOfflineAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SyncOfflineAttendance(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.SyncOfflineAttendance(r.Context(), principal); err != nil {
		slog.Error("SyncOfflineAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Offline attendance synced", nil)
}
