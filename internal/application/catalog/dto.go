package catalog

import (
	"time"

	"github.com/storeops/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductListFilter is the request filter for the storefront product list
type ProductListFilter struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	Search      string `form:"search"`
	InStockOnly bool   `form:"in_stock"`
}

// ProductListResponse is a storefront listing row. Cost price is internal
// and never serialized on the storefront surface.
type ProductListResponse struct {
	ID        string  `json:"id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available int64   `json:"available"`
	InStock   bool    `json:"in_stock"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// ProductDetailResponse is the full product-detail payload
type ProductDetailResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   int64     `json:"available"`
	InStock     bool      `json:"in_stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductListResponse converts a domain product to a listing row
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	return ProductListResponse{
		ID:        p.ID.String(),
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     toFloat64(p.Price),
		Available: p.Available,
		InStock:   p.InStock(),
		ImageURL:  p.ImageURL,
	}
}

// ToProductDetailResponse converts a domain product to the detail payload
func ToProductDetailResponse(p *catalog.Product) ProductDetailResponse {
	return ProductDetailResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       toFloat64(p.Price),
		Available:   p.Available,
		InStock:     p.InStock(),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
