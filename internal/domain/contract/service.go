package contract

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

type ContractService interface {
	// CreateContract records a new Active contract and links it to the
	// employee (HR Admin+).
	CreateContract(ctx context.Context, actor employee.Principal, req CreateContractRequest) (ContractResponse, error)

	// RenewContract expires the current contract, inserts the renewal and
	// relinks the employee, all in one transaction (HR Admin+).
	RenewContract(ctx context.Context, actor employee.Principal, contractID string, req RenewContractRequest) (ContractResponse, error)

	// GetContract returns one contract (HR Admin+, or the contract owner).
	GetContract(ctx context.Context, actor employee.Principal, id string) (ContractResponse, error)

	// GetMyContract returns the acting employee's current contract.
	GetMyContract(ctx context.Context, actor employee.Principal) (ContractResponse, error)

	// ListExpiring lists Active contracts ending within the window
	// (HR Admin+). daysBefore <= 0 falls back to the default window.
	ListExpiring(ctx context.Context, actor employee.Principal, daysBefore int) ([]ContractResponse, error)

	// SweepExpired marks overdue Active contracts Expired and notifies HR.
	// Invoked by the scheduler.
	SweepExpired(ctx context.Context) (int, error)
}
