package postgresql

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleworks/hrms-backend-go/internal/domain/leave"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

// The sync repositories wrap stored procedures. Each procedure is a
// single atomic statement on the database side.

type leaveSyncRepositoryImpl struct {
	db *database.DB
}

func NewLeaveSyncRepository(db *database.DB) leave.LeaveSyncRepository {
	return &leaveSyncRepositoryImpl{db: db}
}

func (r *leaveSyncRepositoryImpl) SyncLeaveToAttendance(ctx context.Context, leaveRequestID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `CALL sync_leave_to_attendance($1)`, leaveRequestID); err != nil {
		return fmt.Errorf("sync leave %s to attendance: %w", leaveRequestID, err)
	}
	return nil
}

type attendanceSyncRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceSyncRepository(db *database.DB) attendance.SyncRepository {
	return &attendanceSyncRepositoryImpl{db: db}
}

func (r *attendanceSyncRepositoryImpl) SyncOfflineAttendance(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `CALL sync_offline_attendance()`); err != nil {
		return fmt.Errorf("sync offline attendance: %w", err)
	}
	return nil
}
