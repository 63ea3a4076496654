package notification

import (
	"time"
)

// CreateNotificationRequest is an internal request produced by other
// services, it never crosses the HTTP boundary directly.
type CreateNotificationRequest struct {
	SenderID *string
	Type     NotificationType
	Urgency  Urgency
	Message  string
}

type InboxResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Urgency   string     `json:"urgency"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToInboxResponse(n Inbox) InboxResponse {
	return InboxResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Urgency:   string(n.Urgency),
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
