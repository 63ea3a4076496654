package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/contract"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractColumns = `
	c.id, c.employee_id, c.contract_type, c.start_date, c.end_date, c.status,
	c.created_at, c.updated_at,
	e.full_name AS employee_name,
	e.email AS employee_email
`

const contractJoins = `
	FROM contracts c
	JOIN employees e ON c.employee_id = e.id
`

func scanContract(row pgx.Row) (contract.Contract, error) {
	var c contract.Contract
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Type, &c.StartDate, &c.EndDate, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName,
		&c.EmployeeEmail,
	)
	return c, err
}

func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contracts (
			id, employee_id, contract_type, start_date, end_date, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.EmployeeID, c.Type, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("create contract: %w", err)
	}

	return c, nil
}

func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + ` WHERE c.id = $1`

	c, err := scanContract(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, err
	}
	return c, nil
}

func (r *contractRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + `
		WHERE c.employee_id = $1 AND c.status = $2
		ORDER BY c.end_date DESC
		LIMIT 1`

	c, err := scanContract(q.QueryRow(ctx, query, employeeID, contract.ContractStatusActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, err
	}
	return c, nil
}

func (r *contractRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + `
		WHERE c.employee_id = $1
		ORDER BY c.start_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContracts(rows)
}

func (r *contractRepositoryImpl) UpdateStatus(ctx context.Context, id string, status contract.ContractStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE contracts SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return contract.ErrContractNotFound
	}
	return nil
}

func (r *contractRepositoryImpl) GetExpiring(ctx context.Context, before time.Time) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + `
		WHERE c.status = $1 AND c.end_date <= $2
		ORDER BY c.end_date`

	rows, err := q.Query(ctx, query, contract.ContractStatusActive, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContracts(rows)
}

func (r *contractRepositoryImpl) GetOverdue(ctx context.Context, asOf time.Time) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + `
		WHERE c.status = $1 AND c.end_date < $2
		ORDER BY c.end_date`

	rows, err := q.Query(ctx, query, contract.ContractStatusActive, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContracts(rows)
}

func (r *contractRepositoryImpl) List(ctx context.Context) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + contractJoins + ` ORDER BY c.end_date`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContracts(rows)
}

func collectContracts(rows pgx.Rows) ([]contract.Contract, error) {
	var contracts []contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
