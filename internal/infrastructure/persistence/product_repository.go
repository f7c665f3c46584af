package persistence

import (
	"context"
	"errors"

	"github.com/storeops/backend/internal/domain/catalog"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/storeops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.Repository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySKU finds a product by its unique SKU
func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds products matching the filter with total count
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.Filter) ([]catalog.Product, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.InStockOnly {
		query = query.Where("available > 0")
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productModels []models.ProductModel
	if err := query.
		Order("name ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, total, nil
}

// Save persists a new product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	model := &models.ProductModel{}
	model.FromDomain(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing product
func (r *GormProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	model := &models.ProductModel{}
	model.FromDomain(p)
	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", p.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
