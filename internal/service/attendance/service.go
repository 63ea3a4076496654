package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/attendance"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	correctionRepo attendance.CorrectionRepository
	syncRepo       attendance.SyncRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	correctionRepo attendance.CorrectionRepository,
	syncRepo attendance.SyncRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		correctionRepo: correctionRepo,
		syncRepo:       syncRepo,
	}
}

// ClockIn implements attendance.AttendanceService. Clocking in twice on
// the same day resumes the open record, a completed day is an error.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, actor employee.Principal, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := s.attendanceRepo.GetForDay(ctx, actor.EmployeeID, day)
	if err == nil {
		if existing.Complete() {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceComplete
		}
		return attendance.ToAttendanceResponse(existing), nil
	}
	if err != attendance.ErrAttendanceNotFound {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  actor.EmployeeID,
		Date:        day,
		Entry:       now,
		LoginMethod: req.LoginMethod,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. The record must
// belong to the caller, clocking out someone else's record is denied
// before the open check.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, actor employee.Principal, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record.EmployeeID != actor.EmployeeID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotOwned
	}
	if record.Complete() {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotOpen
	}

	exit := time.Now()
	workMinutes := int(exit.Sub(record.Entry).Minutes())

	if err := s.attendanceRepo.Close(ctx, record.ID, exit, req.LogoutMethod, workMinutes); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.Exit = &exit
	record.LogoutMethod = &req.LogoutMethod
	record.WorkMinutes = &workMinutes
	return attendance.ToAttendanceResponse(record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, actor employee.Principal, from, to string) ([]attendance.AttendanceResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		// Default to the last 30 days.
		fromDate = time.Now().AddDate(0, 0, -30)
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		toDate = time.Now()
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, actor.EmployeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToAttendanceResponse(r))
	}
	return responses, nil
}

// SubmitCorrection implements attendance.AttendanceService. Requests are
// recorded as Pending and never resolved through this API.
func (s *AttendanceServiceImpl) SubmitCorrection(ctx context.Context, actor employee.Principal, req attendance.CorrectionRequestRequest) (attendance.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CorrectionResponse{}, err
	}

	if req.AttendanceID != nil {
		record, err := s.attendanceRepo.GetByID(ctx, *req.AttendanceID)
		if err != nil {
			return attendance.CorrectionResponse{}, err
		}
		if record.EmployeeID != actor.EmployeeID {
			return attendance.CorrectionResponse{}, attendance.ErrAttendanceNotOwned
		}
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.correctionRepo.Create(ctx, attendance.CorrectionRequest{
		EmployeeID:   actor.EmployeeID,
		AttendanceID: req.AttendanceID,
		Date:         date,
		Description:  req.Description,
		Status:       attendance.CorrectionStatusPending,
	})
	if err != nil {
		return attendance.CorrectionResponse{}, err
	}

	return toCorrectionResponse(created), nil
}

// ListMyCorrections implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMyCorrections(ctx context.Context, actor employee.Principal) ([]attendance.CorrectionResponse, error) {
	corrections, err := s.correctionRepo.GetByEmployeeID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}

	responses := make([]attendance.CorrectionResponse, 0, len(corrections))
	for _, c := range corrections {
		responses = append(responses, toCorrectionResponse(c))
	}
	return responses, nil
}

// GetTeamSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTeamSummary(ctx context.Context, actor employee.Principal, req attendance.TeamSummaryRequest) ([]attendance.TeamDaySummaryResponse, error) {
	if !actor.IsManager() && !actor.Elevated() {
		return nil, attendance.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	day, _ := validator.IsValidDate(req.Date)

	summaries, err := s.attendanceRepo.GetTeamForDay(ctx, actor.EmployeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get team summary: %w", err)
	}

	responses := make([]attendance.TeamDaySummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, attendance.TeamDaySummaryResponse{
			EmployeeID:   summary.EmployeeID,
			EmployeeName: summary.EmployeeName,
			Date:         summary.Date,
			Status:       string(summary.Status),
			Entry:        summary.Entry,
			Exit:         summary.Exit,
			WorkMinutes:  summary.WorkMinutes,
		})
	}
	return responses, nil
}

// SyncOfflineAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SyncOfflineAttendance(ctx context.Context, actor employee.Principal) error {
	if !actor.HasRole(employee.RoleSystemAdmin) {
		return attendance.ErrAccessDenied
	}
	return s.syncRepo.SyncOfflineAttendance(ctx)
}

func toCorrectionResponse(c attendance.CorrectionRequest) attendance.CorrectionResponse {
	return attendance.CorrectionResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		AttendanceID: c.AttendanceID,
		Date:         c.Date,
		Description:  c.Description,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}
