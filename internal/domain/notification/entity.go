package notification

import (
	"time"
)

// Urgency of a notification.
type Urgency string

const (
	UrgencyNormal Urgency = "Normal"
	UrgencyHigh   Urgency = "High"
)

// NotificationType tags what a notification is about.
type NotificationType string

const (
	TypeLeaveDecision   NotificationType = "leave_decision"
	TypeLeaveFlag       NotificationType = "leave_flag"
	TypeMissionAssigned NotificationType = "mission_assigned"
	TypeMissionDecision NotificationType = "mission_decision"
	TypeContractCreated NotificationType = "contract_created"
	TypeContractRenewed NotificationType = "contract_renewed"
	TypeContractExpired NotificationType = "contract_expired"
	TypeShiftAssigned   NotificationType = "shift_assigned"
	TypeReassignment    NotificationType = "reassignment"
	TypeTeamBroadcast   NotificationType = "team_broadcast"
	TypeGeneral         NotificationType = "general"
)

// Notification is the shared message body. Read state lives on the
// per-recipient rows, never on this entity.
type Notification struct {
	ID        string
	SenderID  *string
	Type      NotificationType
	Urgency   Urgency
	Message   string
	CreatedAt time.Time
}

// DeliveryStatus of a recipient row.
type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusFailed    DeliveryStatus = "Failed"
)

// Recipient is the per-employee delivery and read state for one
// notification, keyed by (NotificationID, EmployeeID).
type Recipient struct {
	NotificationID string
	EmployeeID     string
	DeliveryStatus DeliveryStatus
	DeliveredAt    time.Time
	IsRead         bool
	ReadAt         *time.Time
}

// Inbox is a notification joined with the caller's recipient row.
type Inbox struct {
	Notification
	IsRead bool
	ReadAt *time.Time
}
