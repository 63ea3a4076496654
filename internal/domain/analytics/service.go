package analytics

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

// Service exposes the HR reports. All operations require HR Admin+.
type Service interface {
	GetDepartmentStats(ctx context.Context, actor employee.Principal) ([]DepartmentStats, error)
	GetComplianceReport(ctx context.Context, actor employee.Principal) (ComplianceReport, error)
	GetDiversityReport(ctx context.Context, actor employee.Principal) (DiversityReport, error)
	// ExportComplianceReportPDF renders the compliance report as a PDF
	// document.
	ExportComplianceReportPDF(ctx context.Context, actor employee.Principal) ([]byte, error)
}
