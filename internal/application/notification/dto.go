package notification

import (
	"time"

	"github.com/storeops/backend/internal/domain/notification"
)

// NotifyRequest creates a notification for an employee
type NotifyRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Kind        string `json:"kind" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Body        string `json:"body" binding:"max=2000"`
}

// ListFilter narrows a recipient's notification feed
type ListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// NotificationResponse is a single feed entry
type NotificationResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UnreadCountResponse carries the badge counter for the UI
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// ToNotificationResponse converts a domain notification to a feed entry
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
