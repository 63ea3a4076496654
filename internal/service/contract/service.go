package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/contract"
	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/email"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// defaultExpiryWindowDays is the lookahead used when the caller does not
// name one.
const defaultExpiryWindowDays = 30

type ContractServiceImpl struct {
	db                  *database.DB
	contractRepo        contract.ContractRepository
	employeeRepo        employee.EmployeeRepository
	notificationService notification.Service
	emailService        email.EmailService
}

func NewContractService(
	db *database.DB,
	contractRepo contract.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
	emailService email.EmailService,
) contract.ContractService {
	return &ContractServiceImpl{
		db:                  db,
		contractRepo:        contractRepo,
		employeeRepo:        employeeRepo,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// CreateContract implements contract.ContractService.
func (s *ContractServiceImpl) CreateContract(ctx context.Context, actor employee.Principal, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if !actor.Elevated() {
		return contract.ContractResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	var created contract.Contract
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.contractRepo.Create(txCtx, contract.Contract{
			EmployeeID: req.EmployeeID,
			Type:       req.Type,
			StartDate:  start,
			EndDate:    end,
			Status:     contract.ContractStatusActive,
		})
		if err != nil {
			return err
		}

		return s.employeeRepo.SetContractID(txCtx, req.EmployeeID, created.ID)
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}

	_ = s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeContractCreated,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("A new %s contract has been recorded for you, running until %s.", req.Type, end.Format("2006-01-02")),
	}, emp.ID)

	created.EmployeeName = &emp.FullName
	return contract.ToContractResponse(created, time.Now()), nil
}

// RenewContract implements contract.ContractService. Expiring the old
// contract, inserting the renewal and relinking the employee either all
// happen or none do.
func (s *ContractServiceImpl) RenewContract(ctx context.Context, actor employee.Principal, contractID string, req contract.RenewContractRequest) (contract.ContractResponse, error) {
	if !actor.Elevated() {
		return contract.ContractResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	current, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if current.Status != contract.ContractStatusActive {
		return contract.ContractResponse{}, contract.ErrContractNotActive
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	var renewed contract.Contract
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.contractRepo.UpdateStatus(txCtx, current.ID, contract.ContractStatusExpired); err != nil {
			return err
		}

		renewed, err = s.contractRepo.Create(txCtx, contract.Contract{
			EmployeeID: current.EmployeeID,
			Type:       req.Type,
			StartDate:  start,
			EndDate:    end,
			Status:     contract.ContractStatusActive,
		})
		if err != nil {
			return err
		}

		return s.employeeRepo.SetContractID(txCtx, current.EmployeeID, renewed.ID)
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}

	_ = s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeContractRenewed,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("Your contract has been renewed until %s.", end.Format("2006-01-02")),
	}, current.EmployeeID)

	renewed.EmployeeName = current.EmployeeName
	return contract.ToContractResponse(renewed, time.Now()), nil
}

// GetContract implements contract.ContractService.
func (s *ContractServiceImpl) GetContract(ctx context.Context, actor employee.Principal, id string) (contract.ContractResponse, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	if c.EmployeeID != actor.EmployeeID && !actor.Elevated() {
		return contract.ContractResponse{}, employee.ErrAccessDenied
	}

	return contract.ToContractResponse(c, time.Now()), nil
}

// GetMyContract implements contract.ContractService.
func (s *ContractServiceImpl) GetMyContract(ctx context.Context, actor employee.Principal) (contract.ContractResponse, error) {
	c, err := s.contractRepo.GetActiveByEmployeeID(ctx, actor.EmployeeID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.ToContractResponse(c, time.Now()), nil
}

// ListExpiring implements contract.ContractService.
func (s *ContractServiceImpl) ListExpiring(ctx context.Context, actor employee.Principal, daysBefore int) ([]contract.ContractResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}
	if daysBefore <= 0 {
		daysBefore = defaultExpiryWindowDays
	}

	now := time.Now()
	contracts, err := s.contractRepo.GetExpiring(ctx, now.AddDate(0, 0, daysBefore))
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring contracts: %w", err)
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ToContractResponse(c, now))
	}
	return responses, nil
}

// SweepExpired implements contract.ContractService. Each overdue contract
// is expired in its own transaction so one failure does not block the
// rest of the sweep.
func (s *ContractServiceImpl) SweepExpired(ctx context.Context) (int, error) {
	overdue, err := s.contractRepo.GetOverdue(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to get overdue contracts: %w", err)
	}

	expired := 0
	for _, c := range overdue {
		if err := s.contractRepo.UpdateStatus(ctx, c.ID, contract.ContractStatusExpired); err != nil {
			return expired, fmt.Errorf("failed to expire contract %s: %w", c.ID, err)
		}
		expired++

		_ = s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
			Type:    notification.TypeContractExpired,
			Urgency: notification.UrgencyHigh,
			Message: fmt.Sprintf("Your contract ended on %s and has been marked expired.", c.EndDate.Format("2006-01-02")),
		}, c.EmployeeID)

		name := ""
		if c.EmployeeName != nil {
			name = *c.EmployeeName
		}
		_ = s.notificationService.NotifyHRAdmins(ctx, notification.CreateNotificationRequest{
			Type:    notification.TypeContractExpired,
			Urgency: notification.UrgencyHigh,
			Message: fmt.Sprintf("Contract for %s expired on %s.", name, c.EndDate.Format("2006-01-02")),
		})

		if s.emailService != nil && c.EmployeeEmail != nil {
			days := c.DaysUntilExpiry(time.Now())
			_ = s.emailService.SendContractExpiryReminder(*c.EmployeeEmail, name, c.EndDate.Format("2006-01-02"), days)
		}
	}
	return expired, nil
}
