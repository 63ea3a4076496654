package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.entry, a.exit, a.login_method, a.logout_method, a.work_minutes,
	a.created_at, a.updated_at,
	e.full_name AS employee_name
`

const attendanceJoins = `
	FROM attendances a
	JOIN employees e ON a.employee_id = e.id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date,
		&a.Entry, &a.Exit, &a.LoginMethod, &a.LogoutMethod, &a.WorkMinutes,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, entry, login_method,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Date, a.Entry, a.LoginMethod,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) GetForDay(ctx context.Context, employeeID string, day time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) Close(ctx context.Context, id string, exit time.Time, logoutMethod string, workMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET exit = $1, logout_method = $2, work_minutes = $3, updated_at = NOW()
		WHERE id = $4 AND exit IS NULL
	`

	tag, err := q.Exec(ctx, query, exit, logoutMethod, workMinutes, id)
	if err != nil {
		return fmt.Errorf("close attendance %s: %w", id, err)
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotOpen
	}
	return nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) GetTeamForDay(ctx context.Context, managerID string, day time.Time) ([]attendance.TeamDaySummary, error) {
	q := GetQuerier(ctx, r.db)

	// Left join so team members with no record that day still show up,
	// they are classified as absent.
	query := `
		SELECT e.id, e.full_name, a.entry, a.exit, a.work_minutes
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $2
		WHERE e.manager_id = $1 AND e.is_active = true
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, managerID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []attendance.TeamDaySummary
	for rows.Next() {
		var s attendance.TeamDaySummary
		if err := rows.Scan(&s.EmployeeID, &s.EmployeeName, &s.Entry, &s.Exit, &s.WorkMinutes); err != nil {
			return nil, err
		}
		s.Date = day
		switch {
		case s.Entry == nil:
			s.Status = attendance.DayStatusAbsent
		case s.Exit == nil:
			s.Status = attendance.DayStatusIncomplete
		default:
			s.Status = attendance.DayStatusComplete
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

type correctionRepositoryImpl struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) attendance.CorrectionRepository {
	return &correctionRepositoryImpl{db: db}
}

func (r *correctionRepositoryImpl) Create(ctx context.Context, cr attendance.CorrectionRequest) (attendance.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_corrections (id, employee_id, attendance_id, date, description, status, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		cr.EmployeeID, cr.AttendanceID, cr.Date, cr.Description, cr.Status,
	).Scan(&cr.ID, &cr.CreatedAt)
	if err != nil {
		return attendance.CorrectionRequest{}, fmt.Errorf("create correction request: %w", err)
	}

	return cr, nil
}

func (r *correctionRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.CorrectionRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, attendance_id, date, description, status, created_at
		FROM attendance_corrections
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []attendance.CorrectionRequest
	for rows.Next() {
		var cr attendance.CorrectionRequest
		if err := rows.Scan(&cr.ID, &cr.EmployeeID, &cr.AttendanceID, &cr.Date, &cr.Description, &cr.Status, &cr.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, cr)
	}
	return requests, rows.Err()
}
