package models

import (
	"time"

	"github.com/storeops/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// NotificationModel is the persistence model for in-app notifications.
type NotificationModel struct {
	BaseModel
	RecipientID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Kind        notification.Kind `gorm:"type:varchar(30);not null"`
	Title       string            `gorm:"type:varchar(200);not null"`
	Body        string            `gorm:"type:text"`
	ReadAt      *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseEntity:  m.BaseModel.ToDomain(),
		RecipientID: m.RecipientID,
		Kind:        m.Kind,
		Title:       m.Title,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
	}
}

// FromDomain populates the persistence model from a domain Notification
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.RecipientID = n.RecipientID
	m.Kind = n.Kind
	m.Title = n.Title
	m.Body = n.Body
	m.ReadAt = n.ReadAt
}
