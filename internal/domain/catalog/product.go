package catalog

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a storefront catalog entry
type Product struct {
	shared.BaseEntity
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	CostPrice   decimal.Decimal
	Available   int64
	Active      bool
	ImageURL    string
}

// NewProduct creates an active catalog product
func NewProduct(sku, name string, price, costPrice decimal.Decimal) (*Product, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() || costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product prices cannot be negative")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        sku,
		Name:       name,
		Price:      price,
		CostPrice:  costPrice,
		Active:     true,
	}, nil
}

// Deactivate removes the product from the storefront without deleting it
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// InStock reports whether the product can currently be sold
func (p *Product) InStock() bool {
	return p.Active && p.Available > 0
}
