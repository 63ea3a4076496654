package notification

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/sse"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type NotificationServiceImpl struct {
	db               *database.DB
	notificationRepo notification.Repository
	employeeRepo     employee.EmployeeRepository
	hub              *sse.Hub
}

func NewNotificationService(
	db *database.DB,
	notificationRepo notification.Repository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
) notification.Service {
	return &NotificationServiceImpl{
		db:               db,
		notificationRepo: notificationRepo,
		employeeRepo:     employeeRepo,
		hub:              hub,
	}
}

// NotifyEmployee implements notification.Service.
func (n *NotificationServiceImpl) NotifyEmployee(ctx context.Context, req notification.CreateNotificationRequest, employeeID string) error {
	return n.deliver(ctx, req, []string{employeeID})
}

// NotifyTeam implements notification.Service.
func (n *NotificationServiceImpl) NotifyTeam(ctx context.Context, req notification.CreateNotificationRequest, managerID string) error {
	team, err := n.employeeRepo.GetTeam(ctx, managerID)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}
	if len(team) == 0 {
		return nil
	}

	ids := make([]string, 0, len(team))
	for _, member := range team {
		ids = append(ids, member.ID)
	}
	return n.deliver(ctx, req, ids)
}

// NotifyHRAdmins implements notification.Service.
func (n *NotificationServiceImpl) NotifyHRAdmins(ctx context.Context, req notification.CreateNotificationRequest) error {
	admins, err := n.employeeRepo.GetByRole(ctx, employee.RoleHRAdmin)
	if err != nil {
		return fmt.Errorf("failed to get HR admins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}

	ids := make([]string, 0, len(admins))
	for _, admin := range admins {
		ids = append(ids, admin.ID)
	}
	return n.deliver(ctx, req, ids)
}

// deliver creates the shared body and the per-recipient rows in one
// transaction, a notification never exists without its recipients.
func (n *NotificationServiceImpl) deliver(ctx context.Context, req notification.CreateNotificationRequest, employeeIDs []string) error {
	urgency := req.Urgency
	if urgency == "" {
		urgency = notification.UrgencyNormal
	}

	var created notification.Notification
	err := postgresql.WithTransaction(ctx, n.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = n.notificationRepo.Create(txCtx, notification.Notification{
			SenderID: req.SenderID,
			Type:     req.Type,
			Urgency:  urgency,
			Message:  req.Message,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		if err := n.notificationRepo.AddRecipients(txCtx, created.ID, employeeIDs); err != nil {
			return fmt.Errorf("failed to add recipients: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// The live push happens after commit, a rolled back notification is
	// never announced.
	if n.hub != nil {
		n.hub.PublishToMany(employeeIDs, sse.Event{
			Name: "notification",
			Data: notification.ToInboxResponse(notification.Inbox{Notification: created}),
		})
	}
	return nil
}

// GetInbox implements notification.Service.
func (n *NotificationServiceImpl) GetInbox(ctx context.Context, actor employee.Principal) ([]notification.InboxResponse, error) {
	inbox, err := n.notificationRepo.GetInbox(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inbox: %w", err)
	}

	responses := make([]notification.InboxResponse, 0, len(inbox))
	for _, item := range inbox {
		responses = append(responses, notification.ToInboxResponse(item))
	}
	return responses, nil
}

// GetUnreadCount implements notification.Service.
func (n *NotificationServiceImpl) GetUnreadCount(ctx context.Context, actor employee.Principal) (notification.UnreadCountResponse, error) {
	count, err := n.notificationRepo.GetUnreadCount(ctx, actor.EmployeeID)
	if err != nil {
		return notification.UnreadCountResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return notification.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkAsRead implements notification.Service. The update only touches the
// acting employee's recipient row.
func (n *NotificationServiceImpl) MarkAsRead(ctx context.Context, actor employee.Principal, notificationID string) error {
	return n.notificationRepo.MarkAsRead(ctx, notificationID, actor.EmployeeID)
}

// MarkAllAsRead implements notification.Service.
func (n *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, actor employee.Principal) error {
	return n.notificationRepo.MarkAllAsRead(ctx, actor.EmployeeID)
}
