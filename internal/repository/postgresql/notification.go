package postgresql

import (
	"context"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, sender_id, type, urgency, message, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.SenderID, n.Type, n.Urgency, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepositoryImpl) AddRecipients(ctx context.Context, notificationID string, employeeIDs []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_recipients (notification_id, employee_id, delivery_status, delivered_at, is_read)
		SELECT $1, unnest($2::uuid[]), $3, NOW(), false
		ON CONFLICT (notification_id, employee_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, notificationID, employeeIDs, notification.DeliveryStatusDelivered); err != nil {
		return fmt.Errorf("add notification recipients: %w", err)
	}
	return nil
}

func (r *notificationRepositoryImpl) GetInbox(ctx context.Context, employeeID string) ([]notification.Inbox, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.sender_id, n.type, n.urgency, n.message, n.created_at,
		       nr.is_read, nr.read_at
		FROM notification_recipients nr
		JOIN notifications n ON n.id = nr.notification_id
		WHERE nr.employee_id = $1
		ORDER BY n.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inbox []notification.Inbox
	for rows.Next() {
		var item notification.Inbox
		err := rows.Scan(
			&item.ID, &item.SenderID, &item.Type, &item.Urgency, &item.Message, &item.CreatedAt,
			&item.IsRead, &item.ReadAt,
		)
		if err != nil {
			return nil, err
		}
		inbox = append(inbox, item)
	}
	return inbox, rows.Err()
}

func (r *notificationRepositoryImpl) GetUnreadCount(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM notification_recipients
		WHERE employee_id = $1 AND is_read = false
	`, employeeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, notificationID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	// Scoped to the caller's recipient row, other recipients keep their
	// own read state.
	query := `
		UPDATE notification_recipients
		SET is_read = true, read_at = NOW()
		WHERE notification_id = $1 AND employee_id = $2
	`

	tag, err := q.Exec(ctx, query, notificationID, employeeID)
	if err != nil {
		return fmt.Errorf("mark notification %s as read: %w", notificationID, err)
	}
	if tag.RowsAffected() != 1 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notification_recipients
		SET is_read = true, read_at = NOW()
		WHERE employee_id = $1 AND is_read = false
	`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("mark all notifications as read: %w", err)
	}
	return nil
}
