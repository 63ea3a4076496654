package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.email, e.national_id_hash,
	e.phone_number, e.address, e.date_of_birth, e.gender, e.job_title, e.profile_image_url,
	e.department_id, e.manager_id, e.contract_id,
	e.is_active, e.profile_completion,
	e.created_at, e.updated_at,
	d.name AS department_name,
	m.full_name AS manager_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN employees m ON e.manager_id = m.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.Email, &e.NationalIDHash,
		&e.PhoneNumber, &e.Address, &e.DateOfBirth, &e.Gender, &e.JobTitle, &e.ProfileImageURL,
		&e.DepartmentID, &e.ManagerID, &e.ContractID,
		&e.IsActive, &e.ProfileCompletion,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName,
		&e.ManagerName,
	)
	return e, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE lower(e.email) = lower($1)`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE lower(email) = lower($1))`,
		email,
	).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, email, national_id_hash,
			phone_number, address, date_of_birth, gender, job_title,
			department_id, manager_id,
			is_active, profile_completion,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10,
			$11, $12,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.FullName, newEmployee.Email, newEmployee.NationalIDHash,
		newEmployee.PhoneNumber, newEmployee.Address, newEmployee.DateOfBirth, newEmployee.Gender, newEmployee.JobTitle,
		newEmployee.DepartmentID, newEmployee.ManagerID,
		newEmployee.IsActive, newEmployee.ProfileCompletion,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2,
			phone_number = $3, address = $4, date_of_birth = $5, gender = $6, job_title = $7,
			department_id = $8, manager_id = $9,
			is_active = $10, profile_completion = $11,
			updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email,
		emp.PhoneNumber, emp.Address, emp.DateOfBirth, emp.Gender, emp.JobTitle,
		emp.DepartmentID, emp.ManagerID,
		emp.IsActive, emp.ProfileCompletion,
		emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("update employee %s: %w", emp.ID, err)
	}
	return nil
}

func (r *employeeRepositoryImpl) SetNationalIDHash(ctx context.Context, id string, hash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET national_id_hash = $1, updated_at = NOW() WHERE id = $2`,
		hash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SetProfileImageURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET profile_image_url = $1, updated_at = NOW() WHERE id = $2`,
		url, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET is_active = $1, updated_at = NOW() WHERE id = $2`,
		active, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SetContractID(ctx context.Context, id string, contractID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET contract_id = $1, updated_at = NOW() WHERE id = $2`,
		contractID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Reassign(ctx context.Context, id string, departmentID, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = COALESCE($1, department_id),
			manager_id = COALESCE($2, manager_id),
			updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, departmentID, managerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` ORDER BY e.full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sql := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.full_name ILIKE $1 OR e.email ILIKE $1
		ORDER BY e.full_name
		LIMIT 50`

	rows, err := q.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetTeam(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.manager_id = $1 ORDER BY e.full_name`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		JOIN employee_roles er ON er.employee_id = e.id
		JOIN roles ro ON er.role_id = ro.id
		WHERE ro.name = $1
		ORDER BY e.full_name`

	rows, err := q.Query(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetIncompleteProfiles(ctx context.Context, threshold int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.profile_completion < $1 AND e.is_active
		ORDER BY e.profile_completion, e.full_name`

	rows, err := q.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetHierarchy(ctx context.Context) ([]employee.HierarchyNode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.job_title,
			   e.department_id, d.name AS department_name,
			   e.manager_id, m.full_name AS manager_name,
			   (SELECT COUNT(*) FROM employees t WHERE t.manager_id = e.id) AS team_size
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		WHERE e.is_active
		ORDER BY d.name NULLS LAST, e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []employee.HierarchyNode
	for rows.Next() {
		var n employee.HierarchyNode
		if err := rows.Scan(
			&n.EmployeeID, &n.FullName, &n.JobTitle,
			&n.DepartmentID, &n.DepartmentName,
			&n.ManagerID, &n.ManagerName,
			&n.TeamSize,
		); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
