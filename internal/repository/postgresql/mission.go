package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/mission"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type missionRepositoryImpl struct {
	db *database.DB
}

func NewMissionRepository(db *database.DB) mission.MissionRepository {
	return &missionRepositoryImpl{db: db}
}

const missionColumns = `
	ms.id, ms.employee_id, ms.manager_id,
	ms.destination, ms.description, ms.purpose,
	ms.start_date, ms.end_date, ms.status,
	ms.created_at, ms.updated_at,
	e.full_name AS employee_name,
	mg.full_name AS manager_name
`

const missionJoins = `
	FROM missions ms
	JOIN employees e ON ms.employee_id = e.id
	LEFT JOIN employees mg ON ms.manager_id = mg.id
`

func scanMission(row pgx.Row) (mission.Mission, error) {
	var m mission.Mission
	err := row.Scan(
		&m.ID, &m.EmployeeID, &m.ManagerID,
		&m.Destination, &m.Description, &m.Purpose,
		&m.StartDate, &m.EndDate, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
		&m.EmployeeName,
		&m.ManagerName,
	)
	return m, err
}

func collectMissions(rows pgx.Rows) ([]mission.Mission, error) {
	var missions []mission.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

func (r *missionRepositoryImpl) Create(ctx context.Context, m mission.Mission) (mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO missions (
			id, employee_id, manager_id,
			destination, description, purpose,
			start_date, end_date, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.EmployeeID, m.ManagerID,
		m.Destination, m.Description, m.Purpose,
		m.StartDate, m.EndDate, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return mission.Mission{}, fmt.Errorf("create mission: %w", err)
	}

	return m, nil
}

func (r *missionRepositoryImpl) GetByID(ctx context.Context, id string) (mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + missionColumns + missionJoins + ` WHERE ms.id = $1`

	m, err := scanMission(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return mission.Mission{}, mission.ErrMissionNotFound
		}
		return mission.Mission{}, err
	}
	return m, nil
}

func (r *missionRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + missionColumns + missionJoins + `
		WHERE ms.employee_id = $1
		ORDER BY ms.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMissions(rows)
}

func (r *missionRepositoryImpl) GetByManagerID(ctx context.Context, managerID string) ([]mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + missionColumns + missionJoins + `
		WHERE ms.manager_id = $1
		ORDER BY ms.created_at DESC`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMissions(rows)
}

func (r *missionRepositoryImpl) List(ctx context.Context) ([]mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + missionColumns + missionJoins + ` ORDER BY ms.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMissions(rows)
}

func (r *missionRepositoryImpl) UpdateStatus(ctx context.Context, id, managerID string, newStatus mission.MissionStatus) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Reviewability and ownership are checked in the same statement so a
	// concurrent decision cannot slip between a read and the update.
	query := `
		UPDATE missions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND manager_id = $3 AND status IN ($4, $5)
	`

	tag, err := q.Exec(ctx, query,
		newStatus, id, managerID,
		mission.MissionStatusPending, mission.MissionStatusRequested,
	)
	if err != nil {
		return false, fmt.Errorf("update mission %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}
