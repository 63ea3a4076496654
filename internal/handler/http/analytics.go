package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/analytics"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)
	GetComplianceReport(w http.ResponseWriter, r *http.Request)
	GetDiversityReport(w http.ResponseWriter, r *http.Request)
	ExportComplianceReportPDF(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// GetDepartmentStats implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.analyticsService.GetDepartmentStats(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// GetComplianceReport implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) GetComplianceReport(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.analyticsService.GetComplianceReport(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// GetDiversityReport implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) GetDiversityReport(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.analyticsService.GetDiversityReport(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// ExportComplianceReportPDF implements AnalyticsHandler. The rendered
// document is written directly, not wrapped in the JSON envelope.
func (h *AnalyticsHandlerImpl) ExportComplianceReportPDF(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	document, err := h.analyticsService.ExportComplianceReportPDF(r.Context(), principal)
	if err != nil {
		slog.Error("ExportComplianceReportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("compliance-report-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		slog.Error("ExportComplianceReportPDF write error", "error", err)
	}
}
