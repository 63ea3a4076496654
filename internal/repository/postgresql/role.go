package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) employee.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

func (r *roleRepositoryImpl) GetRoles(ctx context.Context, employeeID string) ([]employee.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ro.name
		FROM employee_roles er
		JOIN roles ro ON er.role_id = ro.id
		WHERE er.employee_id = $1
		ORDER BY ro.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []employee.Role
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, employee.Role(name))
	}
	return roles, rows.Err()
}

func (r *roleRepositoryImpl) Assign(ctx context.Context, employeeID string, role employee.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_roles (employee_id, role_id, assigned_at)
		SELECT $1, ro.id, NOW()
		FROM roles ro
		WHERE ro.name = $2
		ON CONFLICT (employee_id, role_id) DO NOTHING
	`
	tag, err := q.Exec(ctx, query, employeeID, string(role))
	if err != nil {
		return fmt.Errorf("assign role %s: %w", role, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the role name is unknown or the assignment already exists.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, string(role)).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return employee.ErrRoleNotFound
		}
		return employee.ErrRoleAlreadyAssigned
	}
	return nil
}

func (r *roleRepositoryImpl) Remove(ctx context.Context, employeeID string, role employee.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM employee_roles er
		USING roles ro
		WHERE er.role_id = ro.id AND er.employee_id = $1 AND ro.name = $2
	`
	tag, err := q.Exec(ctx, query, employeeID, string(role))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrRoleNotFound
	}
	return nil
}

func (r *roleRepositoryImpl) HasRole(ctx context.Context, employeeID string, role employee.Role) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM employee_roles er
			JOIN roles ro ON er.role_id = ro.id
			WHERE er.employee_id = $1 AND ro.name = $2
		)
	`, employeeID, string(role)).Scan(&exists)
	return exists, err
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d employee.Department
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Department{}, employee.ErrDepartmentNotFound
		}
		return employee.Department{}, err
	}
	return d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var d employee.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, name string) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d employee.Department
	d.Name = name
	err := q.QueryRow(ctx, `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, name).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return employee.Department{}, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}
