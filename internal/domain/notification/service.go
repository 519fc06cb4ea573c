package notification

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	// List returns the caller's newest notifications with their unread count.
	List(ctx context.Context, caller auth.Caller) (*NotificationListResponse, error)

	// Create pushes a notification to an arbitrary recipient. Admin/hr only.
	Create(ctx context.Context, caller auth.Caller, req *CreateNotificationRequest) (*NotificationResponse, error)

	MarkRead(ctx context.Context, caller auth.Caller, id string) (*NotificationResponse, error)
	MarkAllRead(ctx context.Context, caller auth.Caller) error
	Delete(ctx context.Context, caller auth.Caller, id string) error

	// Send is the side-channel other engines use on status transitions.
	// Failures are returned for the caller to log; they must not abort the
	// triggering operation.
	Send(ctx context.Context, recipientID, title, message string, typ Type, link *string) error
}
