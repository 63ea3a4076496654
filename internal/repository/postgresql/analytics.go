package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/analytics"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.Repository {
	return &analyticsRepositoryImpl{db: db}
}

func (r *analyticsRepositoryImpl) GetDepartmentStats(ctx context.Context) ([]analytics.DepartmentStats, error) {
	q := GetQuerier(ctx, r.db)

	// Employees without a department land in the "Unassigned" bucket.
	query := `
		SELECT d.id,
		       COALESCE(d.name, 'Unassigned'),
		       COUNT(e.id),
		       COUNT(e.id) FILTER (WHERE e.is_active),
		       COUNT(DISTINCT e.manager_id) FILTER (WHERE e.manager_id IS NOT NULL)
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY COALESCE(d.name, 'Unassigned')
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []analytics.DepartmentStats
	for rows.Next() {
		var s analytics.DepartmentStats
		if err := rows.Scan(&s.DepartmentID, &s.DepartmentName, &s.EmployeeCount, &s.ActiveCount, &s.ManagerCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *analyticsRepositoryImpl) GetComplianceReport(ctx context.Context, profileThreshold int) (analytics.ComplianceReport, error) {
	report := analytics.ComplianceReport{GeneratedAt: time.Now()}

	var err error
	report.IncompleteProfiles, err = r.complianceItems(ctx, `
		SELECT id, full_name, 'profile ' || profile_completion || '%'
		FROM employees
		WHERE is_active = true AND profile_completion < $1
		ORDER BY profile_completion
	`, profileThreshold)
	if err != nil {
		return analytics.ComplianceReport{}, fmt.Errorf("compliance incomplete profiles: %w", err)
	}

	report.ExpiredContracts, err = r.complianceItems(ctx, `
		SELECT e.id, e.full_name, 'contract ended ' || c.end_date::text
		FROM employees e
		JOIN contracts c ON e.contract_id = c.id
		WHERE e.is_active = true AND c.status = 'Expired'
		ORDER BY c.end_date
	`)
	if err != nil {
		return analytics.ComplianceReport{}, fmt.Errorf("compliance expired contracts: %w", err)
	}

	report.MissingManager, err = r.complianceItems(ctx, `
		SELECT id, full_name, NULL
		FROM employees
		WHERE is_active = true AND manager_id IS NULL
		ORDER BY full_name
	`)
	if err != nil {
		return analytics.ComplianceReport{}, fmt.Errorf("compliance missing manager: %w", err)
	}

	report.MissingDepartment, err = r.complianceItems(ctx, `
		SELECT id, full_name, NULL
		FROM employees
		WHERE is_active = true AND department_id IS NULL
		ORDER BY full_name
	`)
	if err != nil {
		return analytics.ComplianceReport{}, fmt.Errorf("compliance missing department: %w", err)
	}

	report.Totals = analytics.ComplianceTotals{
		IncompleteProfiles: len(report.IncompleteProfiles),
		ExpiredContracts:   len(report.ExpiredContracts),
		MissingManager:     len(report.MissingManager),
		MissingDepartment:  len(report.MissingDepartment),
	}
	return report, nil
}

func (r *analyticsRepositoryImpl) complianceItems(ctx context.Context, query string, args ...interface{}) ([]analytics.ComplianceItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []analytics.ComplianceItem
	for rows.Next() {
		var item analytics.ComplianceItem
		if err := rows.Scan(&item.EmployeeID, &item.EmployeeName, &item.Detail); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *analyticsRepositoryImpl) GetDiversityReport(ctx context.Context) (analytics.DiversityReport, error) {
	q := GetQuerier(ctx, r.db)

	report := analytics.DiversityReport{
		GeneratedAt: time.Now(),
		ByGender:    map[string]int{},
	}

	rows, err := q.Query(ctx, `
		SELECT COALESCE(d.name, 'Unassigned'), COUNT(e.id)
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.is_active = true
		GROUP BY d.name
		ORDER BY COUNT(e.id) DESC
	`)
	if err != nil {
		return analytics.DiversityReport{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var share analytics.DepartmentShare
		if err := rows.Scan(&share.DepartmentName, &share.Count); err != nil {
			return analytics.DiversityReport{}, err
		}
		report.TotalCount += share.Count
		report.ByDepartment = append(report.ByDepartment, share)
	}
	if err := rows.Err(); err != nil {
		return analytics.DiversityReport{}, err
	}
	for i := range report.ByDepartment {
		if report.TotalCount > 0 {
			report.ByDepartment[i].Share = float64(report.ByDepartment[i].Count) / float64(report.TotalCount)
		}
	}

	genderRows, err := q.Query(ctx, `
		SELECT COALESCE(gender, 'Unspecified'), COUNT(*)
		FROM employees
		WHERE is_active = true
		GROUP BY gender
	`)
	if err != nil {
		return analytics.DiversityReport{}, err
	}
	defer genderRows.Close()

	for genderRows.Next() {
		var gender string
		var count int
		if err := genderRows.Scan(&gender, &count); err != nil {
			return analytics.DiversityReport{}, err
		}
		report.ByGender[gender] = count
	}
	return report, genderRows.Err()
}
