package analytics

import "time"

// DepartmentStats is one row of the department breakdown.
type DepartmentStats struct {
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName string  `json:"department_name"`
	EmployeeCount  int     `json:"employee_count"`
	ActiveCount    int     `json:"active_count"`
	ManagerCount   int     `json:"manager_count"`
}

// ComplianceReport surfaces records HR needs to act on.
type ComplianceReport struct {
	GeneratedAt        time.Time        `json:"generated_at"`
	IncompleteProfiles []ComplianceItem `json:"incomplete_profiles"`
	ExpiredContracts   []ComplianceItem `json:"expired_contracts"`
	MissingManager     []ComplianceItem `json:"missing_manager"`
	MissingDepartment  []ComplianceItem `json:"missing_department"`
	Totals             ComplianceTotals `json:"totals"`
}

type ComplianceItem struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Detail       *string `json:"detail,omitempty"`
}

type ComplianceTotals struct {
	IncompleteProfiles int `json:"incomplete_profiles"`
	ExpiredContracts   int `json:"expired_contracts"`
	MissingManager     int `json:"missing_manager"`
	MissingDepartment  int `json:"missing_department"`
}

// DiversityReport is the department distribution of the workforce.
type DiversityReport struct {
	GeneratedAt  time.Time         `json:"generated_at"`
	TotalCount   int               `json:"total_count"`
	ByDepartment []DepartmentShare `json:"by_department"`
	ByGender     map[string]int    `json:"by_gender"`
}

type DepartmentShare struct {
	DepartmentName string  `json:"department_name"`
	Count          int     `json:"count"`
	Share          float64 `json:"share"`
}
