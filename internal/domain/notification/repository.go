package notification

import (
	"context"
)

// Repository defines the notification store. Read state is tracked per
// recipient, marking one recipient's row read never affects another's.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	AddRecipients(ctx context.Context, notificationID string, employeeIDs []string) error
	GetInbox(ctx context.Context, employeeID string) ([]Inbox, error)
	GetUnreadCount(ctx context.Context, employeeID string) (int, error)
	MarkAsRead(ctx context.Context, notificationID, employeeID string) error
	MarkAllAsRead(ctx context.Context, employeeID string) error
}
