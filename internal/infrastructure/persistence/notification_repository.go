package persistence

import (
	"context"
	"errors"

	"github.com/storeops/backend/internal/domain/notification"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/storeops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by its ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRecipient finds a recipient's notifications with total count
func (r *GormNotificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]notification.Notification, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("recipient_id = ?", recipientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notificationModels []models.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]notification.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *notificationModels[i].ToDomain()
	}
	return notifications, total, nil
}

// CountUnread counts a recipient's unread notifications
func (r *GormNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a new notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := &models.NotificationModel{}
	model.FromDomain(n)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing notification
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := &models.NotificationModel{}
	model.FromDomain(n)
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{
			"read_at":    model.ReadAt,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
