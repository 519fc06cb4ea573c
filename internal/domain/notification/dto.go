package notification

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	RecipientID string  `json:"recipient_id"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	Type        string  `json:"type"`
	Link        *string `json:"link"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_id",
			Message: "recipient_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if r.Type != "" && !validator.IsInSlice(r.Type, AllTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: leave, attendance, employee, candidate, system",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(n *Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int                     `json:"unread_count"`
}
