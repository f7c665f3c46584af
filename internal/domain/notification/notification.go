package notification

import (
	"context"
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Kind classifies what a notification is about
type Kind string

const (
	KindOrderStatus   Kind = "order_status"
	KindLowStock      Kind = "low_stock"
	KindSettlement    Kind = "settlement"
	KindAuditFinding  Kind = "audit_finding"
	KindAnnouncement  Kind = "announcement"
)

// Notification is a persisted in-app message for an employee. Delivery to
// external channels is handled elsewhere; this aggregate only tracks the
// message and its read state.
type Notification struct {
	shared.BaseEntity
	RecipientID uuid.UUID
	Kind        Kind
	Title       string
	Body        string
	ReadAt      *time.Time
}

// New creates an unread notification
func New(recipientID uuid.UUID, kind Kind, title, body string) (*Notification, error) {
	if recipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	return &Notification{
		BaseEntity:  shared.NewBaseEntity(),
		RecipientID: recipientID,
		Kind:        kind,
		Title:       title,
		Body:        body,
	}, nil
}

// MarkRead records the read timestamp; marking twice is a no-op
func (n *Notification) MarkRead() {
	if n.ReadAt != nil {
		return
	}
	now := time.Now()
	n.ReadAt = &now
	n.UpdatedAt = now
}

// IsRead reports whether the notification was read
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// Repository provides persistence for notifications
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]Notification, int64, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
}
