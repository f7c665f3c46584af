package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/storeops/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderItemRow mirrors the stored JSON shape of an order line. Historical
// rows were written by different clients and disagree on key casing:
// cost price appears as both "cost_price" and "costPrice", color as both
// "color_id" and "colorId". Normalization happens here, once, so the
// domain only ever sees the snake_case spelling.
type orderItemRow struct {
	ProductID uuid.UUID        `json:"product_id"`
	Name      string           `json:"name"`
	Quantity  int64            `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	CostAlt   *decimal.Decimal `json:"costPrice"`
	ColorID   *uuid.UUID       `json:"color_id"`
	ColorAlt  *uuid.UUID       `json:"colorId"`
}

func (r orderItemRow) toDomain() order.Item {
	item := order.Item{
		ProductID: r.ProductID,
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
	switch {
	case r.CostPrice != nil:
		item.CostPrice = *r.CostPrice
	case r.CostAlt != nil:
		item.CostPrice = *r.CostAlt
	default:
		item.CostPrice = decimal.Zero
	}
	if r.ColorID != nil {
		item.ColorID = r.ColorID
	} else if r.ColorAlt != nil {
		item.ColorID = r.ColorAlt
	}
	return item
}

// OrderItems is a slice of order lines stored as JSONB. It implements
// GORM's Scanner/Valuer; writes always use the canonical snake_case keys.
type OrderItems []order.Item

// Value implements driver.Valuer interface for GORM to store as JSONB
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	return json.Marshal([]order.Item(items))
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = OrderItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan OrderItems: unsupported type")
	}

	if len(bytes) == 0 {
		*items = OrderItems{}
		return nil
	}

	var rows []orderItemRow
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return err
	}

	result := make(OrderItems, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	*items = result
	return nil
}

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	OrderNumber     string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status          order.Status     `gorm:"type:varchar(30);not null;index"`
	ReceiptReceived bool             `gorm:"not null;default:false"`
	TotalAmount     decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	FinalAmount     *decimal.Decimal `gorm:"type:decimal(18,4)"`
	DeliveryFee     decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedBy       uuid.UUID        `gorm:"type:uuid;not null;index"`
	Items           OrderItems       `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		BaseEntity:      m.BaseModel.ToDomain(),
		OrderNumber:     m.OrderNumber,
		Status:          m.Status,
		ReceiptReceived: m.ReceiptReceived,
		TotalAmount:     m.TotalAmount,
		FinalAmount:     m.FinalAmount,
		DeliveryFee:     m.DeliveryFee,
		CreatedBy:       m.CreatedBy,
		Items:           []order.Item(m.Items),
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OrderNumber = o.OrderNumber
	m.Status = o.Status
	m.ReceiptReceived = o.ReceiptReceived
	m.TotalAmount = o.TotalAmount
	m.FinalAmount = o.FinalAmount
	m.DeliveryFee = o.DeliveryFee
	m.CreatedBy = o.CreatedBy
	m.Items = OrderItems(o.Items)
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
