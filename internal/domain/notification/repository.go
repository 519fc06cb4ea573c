package notification

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, id string) error
}
