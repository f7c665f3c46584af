package order

import (
	"context"
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter narrows order list queries
type Filter struct {
	shared.Filter
	Status    *Status
	CreatedBy *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository provides persistence for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter Filter) ([]Order, error)
	FindInPeriod(ctx context.Context, from, to time.Time) ([]Order, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Save(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
}
