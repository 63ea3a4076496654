package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type leaveEntitlementRepositoryImpl struct {
	db *database.DB
}

func NewLeaveEntitlementRepository(db *database.DB) leave.LeaveEntitlementRepository {
	return &leaveEntitlementRepositoryImpl{db: db}
}

func (r *leaveEntitlementRepositoryImpl) Upsert(ctx context.Context, employeeID, leaveTypeID string, days int) (leave.LeaveEntitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_entitlements (id, employee_id, leave_type_id, remaining_days, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		ON CONFLICT (employee_id, leave_type_id)
		DO UPDATE SET remaining_days = EXCLUDED.remaining_days, updated_at = NOW()
		RETURNING id, updated_at
	`

	e := leave.LeaveEntitlement{
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		RemainingDays: days,
	}
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, days).Scan(&e.ID, &e.UpdatedAt)
	if err != nil {
		return leave.LeaveEntitlement{}, fmt.Errorf("upsert entitlement: %w", err)
	}
	return e, nil
}

func (r *leaveEntitlementRepositoryImpl) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveEntitlement, error) {
	q := GetQuerier(ctx, r.db)

	var e leave.LeaveEntitlement
	err := q.QueryRow(ctx, `
		SELECT le.id, le.employee_id, le.leave_type_id, le.remaining_days, le.updated_at,
			   lt.name AS leave_type_name
		FROM leave_entitlements le
		JOIN leave_types lt ON le.leave_type_id = lt.id
		WHERE le.employee_id = $1 AND le.leave_type_id = $2
	`, employeeID, leaveTypeID).Scan(&e.ID, &e.EmployeeID, &e.LeaveTypeID, &e.RemainingDays, &e.UpdatedAt, &e.LeaveTypeName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveEntitlement{}, leave.ErrEntitlementNotFound
		}
		return leave.LeaveEntitlement{}, err
	}
	return e, nil
}

func (r *leaveEntitlementRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveEntitlement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT le.id, le.employee_id, le.leave_type_id, le.remaining_days, le.updated_at,
			   lt.name AS leave_type_name
		FROM leave_entitlements le
		JOIN leave_types lt ON le.leave_type_id = lt.id
		WHERE le.employee_id = $1
		ORDER BY lt.name
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entitlements []leave.LeaveEntitlement
	for rows.Next() {
		var e leave.LeaveEntitlement
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.LeaveTypeID, &e.RemainingDays, &e.UpdatedAt, &e.LeaveTypeName); err != nil {
			return nil, err
		}
		entitlements = append(entitlements, e)
	}
	return entitlements, rows.Err()
}

func (r *leaveEntitlementRepositoryImpl) AddDays(ctx context.Context, employeeID, leaveTypeID string, delta int) error {
	q := GetQuerier(ctx, r.db)

	// The balance is allowed to go negative, approval deducts
	// unconditionally.
	tag, err := q.Exec(ctx, `
		UPDATE leave_entitlements
		SET remaining_days = remaining_days + $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3
	`, delta, employeeID, leaveTypeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrEntitlementNotFound
	}
	return nil
}
