package analytics

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/analytics"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

// profileThreshold marks profiles below this completion percentage as
// non-compliant.
const profileThreshold = 80

type AnalyticsServiceImpl struct {
	analyticsRepo analytics.Repository
}

func NewAnalyticsService(analyticsRepo analytics.Repository) analytics.Service {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// GetDepartmentStats implements analytics.Service.
func (s *AnalyticsServiceImpl) GetDepartmentStats(ctx context.Context, actor employee.Principal) ([]analytics.DepartmentStats, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	stats, err := s.analyticsRepo.GetDepartmentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get department stats: %w", err)
	}
	return stats, nil
}

// GetComplianceReport implements analytics.Service.
func (s *AnalyticsServiceImpl) GetComplianceReport(ctx context.Context, actor employee.Principal) (analytics.ComplianceReport, error) {
	if !actor.Elevated() {
		return analytics.ComplianceReport{}, employee.ErrAccessDenied
	}

	report, err := s.analyticsRepo.GetComplianceReport(ctx, profileThreshold)
	if err != nil {
		return analytics.ComplianceReport{}, fmt.Errorf("failed to get compliance report: %w", err)
	}
	return report, nil
}

// GetDiversityReport implements analytics.Service.
func (s *AnalyticsServiceImpl) GetDiversityReport(ctx context.Context, actor employee.Principal) (analytics.DiversityReport, error) {
	if !actor.Elevated() {
		return analytics.DiversityReport{}, employee.ErrAccessDenied
	}

	report, err := s.analyticsRepo.GetDiversityReport(ctx)
	if err != nil {
		return analytics.DiversityReport{}, fmt.Errorf("failed to get diversity report: %w", err)
	}
	return report, nil
}

// ExportComplianceReportPDF implements analytics.Service.
func (s *AnalyticsServiceImpl) ExportComplianceReportPDF(ctx context.Context, actor employee.Principal) ([]byte, error) {
	report, err := s.GetComplianceReport(ctx, actor)
	if err != nil {
		return nil, err
	}
	return renderCompliancePDF(report)
}
