package notification

import (
	"context"

	"github.com/storeops/backend/internal/domain/notification"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnreadCounter caches per-recipient unread badge counts so the UI can
// poll them without touching the database. A cache miss falls back to a
// repository count; cache failures are logged and never surfaced.
type UnreadCounter interface {
	Get(ctx context.Context, recipientID uuid.UUID) (int64, bool, error)
	Set(ctx context.Context, recipientID uuid.UUID, count int64) error
	Incr(ctx context.Context, recipientID uuid.UUID) error
	Decr(ctx context.Context, recipientID uuid.UUID) error
}

// Service manages the in-app notification feed
type Service struct {
	notifications notification.Repository
	counter       UnreadCounter
	logger        *zap.Logger
}

// NewService creates a notification service
func NewService(notifications notification.Repository, counter UnreadCounter, logger *zap.Logger) *Service {
	return &Service{notifications: notifications, counter: counter, logger: logger}
}

// Notify creates and stores a notification, bumping the recipient's
// unread counter.
func (s *Service) Notify(ctx context.Context, req NotifyRequest) (*NotificationResponse, error) {
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID must be a valid UUID")
	}

	n, err := notification.New(recipientID, notification.Kind(req.Kind), req.Title, req.Body)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.Save(ctx, n); err != nil {
		s.logger.Error("failed to save notification",
			zap.String("recipient_id", recipientID.String()), zap.Error(err))
		return nil, err
	}

	if err := s.counter.Incr(ctx, recipientID); err != nil {
		s.logger.Warn("failed to bump unread counter",
			zap.String("recipient_id", recipientID.String()), zap.Error(err))
	}

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// Feed returns a recipient's notifications, newest first
func (s *Service) Feed(ctx context.Context, recipientID uuid.UUID, filter ListFilter) ([]NotificationResponse, int64, error) {
	f := shared.Filter{Page: filter.Page, PageSize: filter.PageSize, OrderBy: "created_at", OrderDir: "desc"}
	f.Normalize()

	items, total, err := s.notifications.FindByRecipient(ctx, recipientID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NotificationResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToNotificationResponse(&items[i]))
	}
	return responses, total, nil
}

// MarkRead marks a notification read for its recipient. Reading someone
// else's notification is reported as not found.
func (s *Service) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	n, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return shared.ErrNotFound
	}
	if n.IsRead() {
		return nil
	}

	n.MarkRead()
	if err := s.notifications.Update(ctx, n); err != nil {
		return err
	}

	if err := s.counter.Decr(ctx, recipientID); err != nil {
		s.logger.Warn("failed to decrement unread counter",
			zap.String("recipient_id", recipientID.String()), zap.Error(err))
	}
	return nil
}

// UnreadCount returns the badge count, preferring the cached value and
// rebuilding the cache from the repository on a miss.
func (s *Service) UnreadCount(ctx context.Context, recipientID uuid.UUID) (*UnreadCountResponse, error) {
	if count, ok, err := s.counter.Get(ctx, recipientID); err == nil && ok {
		return &UnreadCountResponse{Unread: count}, nil
	} else if err != nil {
		s.logger.Warn("unread counter cache read failed",
			zap.String("recipient_id", recipientID.String()), zap.Error(err))
	}

	count, err := s.notifications.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if err := s.counter.Set(ctx, recipientID, count); err != nil {
		s.logger.Warn("failed to rebuild unread counter",
			zap.String("recipient_id", recipientID.String()), zap.Error(err))
	}
	return &UnreadCountResponse{Unread: count}, nil
}
