package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotARecipient        = errors.New("employee is not a recipient of this notification")
)
