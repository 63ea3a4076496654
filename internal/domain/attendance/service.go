package attendance

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

type AttendanceService interface {
	// ClockIn opens today's attendance record. If an open record already
	// exists it is returned unchanged, a completed one yields
	// ErrAttendanceComplete.
	ClockIn(ctx context.Context, actor employee.Principal, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the identified record. The record must belong to the
	// acting employee and still be open.
	ClockOut(ctx context.Context, actor employee.Principal, req ClockOutRequest) (AttendanceResponse, error)

	// GetMyAttendance lists the acting employee's records in a date range.
	GetMyAttendance(ctx context.Context, actor employee.Principal, from, to string) ([]AttendanceResponse, error)

	// SubmitCorrection records a correction request. Requests stay Pending,
	// there is no resolution workflow.
	SubmitCorrection(ctx context.Context, actor employee.Principal, req CorrectionRequestRequest) (CorrectionResponse, error)

	// ListMyCorrections lists the acting employee's correction requests.
	ListMyCorrections(ctx context.Context, actor employee.Principal) ([]CorrectionResponse, error)

	// GetTeamSummary returns the per-day status of the acting manager's
	// direct reports.
	GetTeamSummary(ctx context.Context, actor employee.Principal, req TeamSummaryRequest) ([]TeamDaySummaryResponse, error)

	// SyncOfflineAttendance folds offline device punches into the store
	// (System Admin only).
	SyncOfflineAttendance(ctx context.Context, actor employee.Principal) error
}
