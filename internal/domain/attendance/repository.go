package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetForDay returns the employee's record for the given day, open or
	// complete, if one exists.
	GetForDay(ctx context.Context, employeeID string, day time.Time) (Attendance, error)
	// Close sets exit, logout method and worked minutes on an open record.
	Close(ctx context.Context, id string, exit time.Time, logoutMethod string, workMinutes int) error
	GetByEmployeeID(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	GetTeamForDay(ctx context.Context, managerID string, day time.Time) ([]TeamDaySummary, error)
}

type CorrectionRepository interface {
	Create(ctx context.Context, cr CorrectionRequest) (CorrectionRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]CorrectionRequest, error)
}

// SyncRepository wraps the stored procedure that folds offline device
// punches into the attendance table.
type SyncRepository interface {
	SyncOfflineAttendance(ctx context.Context) error
}
