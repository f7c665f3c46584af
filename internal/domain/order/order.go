package order

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the delivery lifecycle state of an order
type Status string

const (
	StatusPending         Status = "pending"
	StatusProcessing      Status = "processing"
	StatusShipped         Status = "shipped"
	StatusDelivery        Status = "delivery"
	StatusDelivered       Status = "delivered"
	StatusReturned        Status = "returned"
	StatusReturnedInStock Status = "returned_in_stock"
	StatusCancelled       Status = "cancelled"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivery,
		StatusDelivered, StatusReturned, StatusReturnedInStock, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if the order can no longer change state
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned ||
		s == StatusReturnedInStock || s == StatusCancelled
}

// Item is a single order line. Quantity is always positive; CostPrice is the
// canonical cost field after boundary normalization, zero when the source row
// never carried one.
type Item struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	ColorID   *uuid.UUID      `json:"color_id,omitempty"`
}

// Subtotal returns quantity x unit price
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Cost returns quantity x cost price
func (i Item) Cost() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Profit returns (unit price - cost price) x quantity
func (i Item) Profit() decimal.Decimal {
	return i.UnitPrice.Sub(i.CostPrice).Mul(decimal.NewFromInt(i.Quantity))
}

// Order is a customer order aggregate root with embedded line items.
// FinalAmount is nil when the source row never recorded a post-discount total.
type Order struct {
	shared.BaseEntity
	OrderNumber     string
	Status          Status
	ReceiptReceived bool
	TotalAmount     decimal.Decimal
	FinalAmount     *decimal.Decimal
	DeliveryFee     decimal.Decimal
	CreatedBy       uuid.UUID
	Items           []Item
}

// NewOrder creates a new order in the pending state
func NewOrder(orderNumber string, createdBy uuid.UUID) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Creating employee ID cannot be empty")
	}
	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		OrderNumber: orderNumber,
		Status:      StatusPending,
		CreatedBy:   createdBy,
		TotalAmount: decimal.Zero,
		DeliveryFee: decimal.Zero,
		Items:       make([]Item, 0),
	}, nil
}

// AddItem appends a line item and recomputes the order total
func (o *Order) AddItem(item Item) error {
	if item.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if item.UnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Item unit price cannot be negative")
	}
	o.Items = append(o.Items, item)
	o.TotalAmount = o.TotalAmount.Add(item.Subtotal())
	o.UpdatedAt = time.Now()
	return nil
}

// CountsTowardRevenue reports whether the order is revenue-recognized.
// Delivered alone is not enough: the delivery-partner receipt must be
// confirmed before any revenue, COGS or profit is realized.
func (o *Order) CountsTowardRevenue() bool {
	return o.Status == StatusDelivered && o.ReceiptReceived
}

// Revenue returns the recognized order amount: the final (post-discount)
// amount when present, otherwise the raw total.
func (o *Order) Revenue() decimal.Decimal {
	if o.FinalAmount != nil {
		return *o.FinalAmount
	}
	return o.TotalAmount
}

// COGS returns the total cost basis across all line items
func (o *Order) COGS() decimal.Decimal {
	cogs := decimal.Zero
	for _, item := range o.Items {
		cogs = cogs.Add(item.Cost())
	}
	return cogs
}

// ItemsProfit returns the summed per-item profit across all line items
func (o *Order) ItemsProfit() decimal.Decimal {
	profit := decimal.Zero
	for _, item := range o.Items {
		profit = profit.Add(item.Profit())
	}
	return profit
}

// ActivityDate returns the timestamp used for daily grouping: the last
// update when set, otherwise the creation time.
func (o *Order) ActivityDate() time.Time {
	if !o.UpdatedAt.IsZero() {
		return o.UpdatedAt
	}
	return o.CreatedAt
}
