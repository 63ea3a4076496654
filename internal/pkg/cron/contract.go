package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/contract"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/email"
)

// reminderWindowDays is how far ahead the reminder job looks for
// contracts about to end.
const reminderWindowDays = 30

type ContractJobs struct {
	contractService contract.ContractService
	contractRepo    contract.ContractRepository
	emailService    email.EmailService
}

func NewContractJobs(
	contractService contract.ContractService,
	contractRepo contract.ContractRepository,
	emailService email.EmailService,
) *ContractJobs {
	return &ContractJobs{
		contractService: contractService,
		contractRepo:    contractRepo,
		emailService:    emailService,
	}
}

// SweepExpiredContracts marks overdue Active contracts Expired.
func (j *ContractJobs) SweepExpiredContracts(ctx context.Context) error {
	expired, err := j.contractService.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("contract expiry sweep: %w", err)
	}
	if expired > 0 {
		slog.Info("Expired overdue contracts", "count", expired)
	}
	return nil
}

// SendExpiryReminders emails employees whose Active contract ends within
// the reminder window.
func (j *ContractJobs) SendExpiryReminders(ctx context.Context) error {
	now := time.Now()
	expiring, err := j.contractRepo.GetExpiring(ctx, now.AddDate(0, 0, reminderWindowDays))
	if err != nil {
		return fmt.Errorf("get expiring contracts: %w", err)
	}

	sent := 0
	for _, c := range expiring {
		if c.EmployeeEmail == nil {
			continue
		}
		name := ""
		if c.EmployeeName != nil {
			name = *c.EmployeeName
		}
		if err := j.emailService.SendContractExpiryReminder(
			*c.EmployeeEmail, name, c.EndDate.Format("2006-01-02"), c.DaysUntilExpiry(now)); err != nil {
			slog.Error("Failed to send contract expiry reminder", "contract_id", c.ID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		slog.Info("Sent contract expiry reminders", "count", sent)
	}
	return nil
}
