package catalog

import (
	"context"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter narrows product list queries
type Filter struct {
	shared.Filter
	ActiveOnly  bool
	InStockOnly bool
}

// Repository provides persistence for catalog products
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindAll(ctx context.Context, filter Filter) ([]Product, int64, error)
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
}
