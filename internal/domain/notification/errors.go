package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not authorized to access this notification")
)
