package notification

import (
	"context"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
)

// Service is the notification sink the other workflows publish into.
type Service interface {
	// NotifyEmployee delivers to a single recipient.
	NotifyEmployee(ctx context.Context, req CreateNotificationRequest, employeeID string) error

	// NotifyTeam delivers to every direct report of the manager.
	NotifyTeam(ctx context.Context, req CreateNotificationRequest, managerID string) error

	// NotifyHRAdmins delivers to every employee holding the HR Admin role.
	NotifyHRAdmins(ctx context.Context, req CreateNotificationRequest) error

	// Inbox operations, always scoped to the acting employee.
	GetInbox(ctx context.Context, actor employee.Principal) ([]InboxResponse, error)
	GetUnreadCount(ctx context.Context, actor employee.Principal) (UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, actor employee.Principal, notificationID string) error
	MarkAllAsRead(ctx context.Context, actor employee.Principal) error
}
