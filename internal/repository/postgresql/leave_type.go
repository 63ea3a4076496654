package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, leaveType.Name, leaveType.Description).
		Scan(&leaveType.ID, &leaveType.CreatedAt, &leaveType.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("create leave type: %w", err)
	}

	return leaveType, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	var lt leave.LeaveType
	err := q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM leave_types WHERE id = $1`,
		id,
	).Scan(&lt.ID, &lt.Name, &lt.Description, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return lt, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM leave_types ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Description, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, rows.Err()
}

type leavePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.LeavePolicyRepository {
	return &leavePolicyRepositoryImpl{db: db}
}

func (r *leavePolicyRepositoryImpl) Create(ctx context.Context, policy leave.LeavePolicy) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policies (id, leave_type_id, name, annual_days, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		policy.LeaveTypeID, policy.Name, policy.AnnualDays, policy.Description,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return leave.LeavePolicy{}, fmt.Errorf("create leave policy: %w", err)
	}

	return policy, nil
}

func (r *leavePolicyRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	var p leave.LeavePolicy
	err := q.QueryRow(ctx, `
		SELECT p.id, p.leave_type_id, p.name, p.annual_days, p.description, p.created_at, p.updated_at,
			   lt.name AS leave_type_name
		FROM leave_policies p
		JOIN leave_types lt ON p.leave_type_id = lt.id
		WHERE p.id = $1
	`, id).Scan(&p.ID, &p.LeaveTypeID, &p.Name, &p.AnnualDays, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.LeaveTypeName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeavePolicy{}, leave.ErrLeavePolicyNotFound
		}
		return leave.LeavePolicy{}, err
	}
	return p, nil
}

func (r *leavePolicyRepositoryImpl) List(ctx context.Context) ([]leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT p.id, p.leave_type_id, p.name, p.annual_days, p.description, p.created_at, p.updated_at,
			   lt.name AS leave_type_name
		FROM leave_policies p
		JOIN leave_types lt ON p.leave_type_id = lt.id
		ORDER BY p.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []leave.LeavePolicy
	for rows.Next() {
		var p leave.LeavePolicy
		if err := rows.Scan(&p.ID, &p.LeaveTypeID, &p.Name, &p.AnnualDays, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.LeaveTypeName); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}
