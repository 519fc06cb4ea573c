package notification

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

// listLimit caps how many notifications a single list call returns.
const listLimit = 30

type notificationService struct {
	notificationRepo notification.Repository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo notification.Repository) notification.Service {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) List(ctx context.Context, caller auth.Caller) (*notification.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, caller.UserID, listLimit)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.UnreadCount(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]*notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.ToResponse(n))
	}

	return &notification.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) Create(ctx context.Context, caller auth.Caller, req *notification.CreateNotificationRequest) (*notification.NotificationResponse, error) {
	if !caller.CanManageOthers() {
		return nil, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	typ := notification.TypeSystem
	if req.Type != "" {
		typ = notification.Type(req.Type)
	}

	n := &notification.Notification{
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Message:     req.Message,
		Type:        typ,
		Link:        req.Link,
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	return notification.ToResponse(n), nil
}

func (s *notificationService) MarkRead(ctx context.Context, caller auth.Caller, id string) (*notification.NotificationResponse, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if n.RecipientID != caller.UserID {
		return nil, notification.ErrNotRecipient
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	n.Read = true
	return notification.ToResponse(n), nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, caller auth.Caller) error {
	return s.notificationRepo.MarkAllRead(ctx, caller.UserID)
}

func (s *notificationService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if n.RecipientID != caller.UserID {
		return notification.ErrNotRecipient
	}

	return s.notificationRepo.Delete(ctx, id)
}

// Send is the side-channel used by the attendance and leave engines.
func (s *notificationService) Send(ctx context.Context, recipientID, title, message string, typ notification.Type, link *string) error {
	return s.notificationRepo.Create(ctx, &notification.Notification{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        typ,
		Link:        link,
	})
}
