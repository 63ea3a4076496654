package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.duration_days,
	lr.justification, lr.status, lr.approval_audit,
	lr.created_at, lr.updated_at,
	lt.name AS leave_type_name,
	e.full_name AS employee_name
`

const leaveRequestJoins = `
	FROM leave_requests lr
	JOIN leave_types lt ON lr.leave_type_id = lt.id
	JOIN employees e ON lr.employee_id = e.id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID,
		&lr.StartDate, &lr.EndDate, &lr.DurationDays,
		&lr.Justification, &lr.Status, &lr.ApprovalAudit,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.LeaveTypeName,
		&lr.EmployeeName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, duration_days,
			justification, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.DurationDays,
		request.Justification, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) GetByManagerID(ctx context.Context, managerID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE e.manager_id = $1
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, id string, expectStatus *leave.LeaveRequestStatus, newStatus leave.LeaveRequestStatus, justification, audit string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard sits in the same statement as the update, so under
	// a transaction two concurrent decisions resolve to one winner.
	var query string
	args := []interface{}{newStatus, justification, audit, id}
	if expectStatus != nil {
		query = `
			UPDATE leave_requests
			SET status = $1, justification = $2, approval_audit = $3, updated_at = NOW()
			WHERE id = $4 AND status = $5
		`
		args = append(args, *expectStatus)
	} else {
		query = `
			UPDATE leave_requests
			SET status = $1, justification = $2, approval_audit = $3, updated_at = NOW()
			WHERE id = $4
		`
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update leave request %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

type leaveDocumentRepositoryImpl struct {
	db *database.DB
}

func NewLeaveDocumentRepository(db *database.DB) leave.LeaveDocumentRepository {
	return &leaveDocumentRepositoryImpl{db: db}
}

func (r *leaveDocumentRepositoryImpl) Create(ctx context.Context, doc leave.LeaveDocument) (leave.LeaveDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_documents (id, leave_request_id, file_name, file_path, uploaded_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, uploaded_at
	`

	err := q.QueryRow(ctx, query, doc.LeaveRequestID, doc.FileName, doc.FilePath).
		Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return leave.LeaveDocument{}, fmt.Errorf("create leave document: %w", err)
	}

	return doc, nil
}

func (r *leaveDocumentRepositoryImpl) GetByRequestID(ctx context.Context, requestID string) ([]leave.LeaveDocument, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, leave_request_id, file_name, file_path, uploaded_at
		FROM leave_documents
		WHERE leave_request_id = $1
		ORDER BY uploaded_at
	`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []leave.LeaveDocument
	for rows.Next() {
		var d leave.LeaveDocument
		if err := rows.Scan(&d.ID, &d.LeaveRequestID, &d.FileName, &d.FilePath, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
