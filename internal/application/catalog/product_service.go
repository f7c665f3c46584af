package catalog

import (
	"context"

	"github.com/storeops/backend/internal/domain/catalog"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService serves the storefront catalog surface. It only ever
// exposes active products; management of the catalog itself lives in the
// back office and is out of this service's reach.
type ProductService struct {
	products catalog.Repository
	logger   *zap.Logger
}

// NewProductService creates a product service
func NewProductService(products catalog.Repository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// List returns the storefront product listing
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductListResponse, int64, error) {
	domainFilter := catalog.Filter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Search:   filter.Search,
		},
		ActiveOnly:  true,
		InStockOnly: filter.InStockOnly,
	}
	domainFilter.Normalize()

	products, total, err := s.products.FindAll(ctx, domainFilter)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, 0, err
	}

	responses := make([]ProductListResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductListResponse(&products[i]))
	}
	return responses, total, nil
}

// GetByID returns a single product detail. Inactive products are hidden
// from the storefront and reported as not found.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductDetailResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.ErrNotFound
	}
	resp := ToProductDetailResponse(product)
	return &resp, nil
}
