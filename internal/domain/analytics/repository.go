package analytics

import "context"

type Repository interface {
	GetDepartmentStats(ctx context.Context) ([]DepartmentStats, error)
	GetComplianceReport(ctx context.Context, profileThreshold int) (ComplianceReport, error)
	GetDiversityReport(ctx context.Context) (DiversityReport, error)
}
