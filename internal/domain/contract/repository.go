package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (Contract, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Contract, error)
	UpdateStatus(ctx context.Context, id string, status ContractStatus) error
	GetExpiring(ctx context.Context, before time.Time) ([]Contract, error)
	GetOverdue(ctx context.Context, asOf time.Time) ([]Contract, error)
	List(ctx context.Context) ([]Contract, error)
}
