package contract

import "time"

type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "Active"
	ContractStatusExpired ContractStatus = "Expired"
)

// Contract entity. An employee has at most one Active contract, renewal
// expires the current one and inserts a fresh row.
type Contract struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Status     ContractStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated on reads that join the employee table
	EmployeeName  *string
	EmployeeEmail *string
}

// DaysUntilExpiry returns whole days between now and the contract end date.
func (c Contract) DaysUntilExpiry(now time.Time) int {
	return int(c.EndDate.Sub(now).Hours() / 24)
}
