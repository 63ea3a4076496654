package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/shift"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.StartTime, s.EndTime, s.Description).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var s shift.Shift
	err := q.QueryRow(ctx, `
		SELECT id, name, start_time, end_time, description, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, start_time, end_time, description, created_at, updated_at
		FROM shifts
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	sa.id, sa.shift_id, sa.employee_id, sa.department_id, sa.kind,
	sa.valid_from, sa.valid_to, sa.created_at,
	s.name AS shift_name,
	e.full_name AS employee_name,
	d.name AS department_name
`

const assignmentJoins = `
	FROM shift_assignments sa
	JOIN shifts s ON sa.shift_id = s.id
	LEFT JOIN employees e ON sa.employee_id = e.id
	LEFT JOIN departments d ON sa.department_id = d.id
`

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(
		&a.ID, &a.ShiftID, &a.EmployeeID, &a.DepartmentID, &a.Kind,
		&a.ValidFrom, &a.ValidTo, &a.CreatedAt,
		&a.ShiftName,
		&a.EmployeeName,
		&a.DepartmentName,
	)
	return a, err
}

func (r *assignmentRepositoryImpl) AssignToEmployee(ctx context.Context, shiftID, employeeID string, validFrom time.Time, validTo *time.Time) (shift.Assignment, error) {
	return r.insertStandard(ctx, shiftID, &employeeID, nil, validFrom, validTo)
}

func (r *assignmentRepositoryImpl) AssignToDepartment(ctx context.Context, shiftID, departmentID string, validFrom time.Time, validTo *time.Time) (shift.Assignment, error) {
	return r.insertStandard(ctx, shiftID, nil, &departmentID, validFrom, validTo)
}

func (r *assignmentRepositoryImpl) insertStandard(ctx context.Context, shiftID string, employeeID, departmentID *string, validFrom time.Time, validTo *time.Time) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, shift_id, employee_id, department_id, kind, valid_from, valid_to, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	a := shift.Assignment{
		ShiftID:      shiftID,
		EmployeeID:   employeeID,
		DepartmentID: departmentID,
		Kind:         shift.AssignmentKindStandard,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
	}

	err := q.QueryRow(ctx, query,
		shiftID, employeeID, departmentID, shift.AssignmentKindStandard, validFrom, validTo,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("create shift assignment: %w", err)
	}

	return a, nil
}

// AssignCustom creates a one-off shift for the employee through the
// assign_custom_shift procedure, which inserts the shift row and the
// assignment together.
func (r *assignmentRepositoryImpl) AssignCustom(ctx context.Context, employeeID, startTime, endTime string, validFrom, validTo time.Time) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	var assignmentID string
	err := q.QueryRow(ctx, `SELECT assign_custom_shift($1, $2, $3, $4, $5)`,
		employeeID, startTime, endTime, validFrom, validTo,
	).Scan(&assignmentID)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("assign custom shift: %w", err)
	}

	return r.getByID(ctx, assignmentID)
}

func (r *assignmentRepositoryImpl) ConfigureSplit(ctx context.Context, employeeID, firstStart, firstEnd, secondStart, secondEnd string, validFrom time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `CALL configure_split_shift($1, $2, $3, $4, $5, $6)`,
		employeeID, firstStart, firstEnd, secondStart, secondEnd, validFrom,
	)
	if err != nil {
		return fmt.Errorf("configure split shift: %w", err)
	}
	return nil
}

func (r *assignmentRepositoryImpl) AssignRotational(ctx context.Context, employeeID string, shiftIDs []string, intervalDays int, validFrom time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `CALL assign_rotational_shift($1, $2, $3, $4)`,
		employeeID, shiftIDs, intervalDays, validFrom,
	)
	if err != nil {
		return fmt.Errorf("assign rotational shift: %w", err)
	}
	return nil
}

func (r *assignmentRepositoryImpl) getByID(ctx context.Context, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + ` WHERE sa.id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	// An employee is covered either directly or through their department.
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE sa.employee_id = $1
		   OR sa.department_id = (SELECT department_id FROM employees WHERE id = $1)
		ORDER BY sa.valid_from DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepositoryImpl) List(ctx context.Context) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + ` ORDER BY sa.valid_from DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
