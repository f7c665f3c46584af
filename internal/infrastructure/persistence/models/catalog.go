package models

import (
	"github.com/storeops/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for catalog products.
type ProductModel struct {
	BaseModel
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Available   int64           `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;default:true;index"`
	ImageURL    string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CostPrice:   m.CostPrice,
		Available:   m.Available,
		Active:      m.Active,
		ImageURL:    m.ImageURL,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.CostPrice = p.CostPrice
	m.Available = p.Available
	m.Active = p.Active
	m.ImageURL = p.ImageURL
}
