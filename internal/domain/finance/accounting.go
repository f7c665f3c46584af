package finance

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Accounting is the single-row aggregate holding store-level capital. Capital
// is the denominator for ROI and runway computations.
type Accounting struct {
	shared.BaseEntity
	Capital decimal.Decimal
}

// NewAccounting creates the accounting aggregate with starting capital
func NewAccounting(capital decimal.Decimal) (*Accounting, error) {
	if capital.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CAPITAL", "Capital cannot be negative")
	}
	return &Accounting{
		BaseEntity: shared.NewBaseEntity(),
		Capital:    capital,
	}, nil
}

// AdjustCapital applies a signed delta to capital
func (a *Accounting) AdjustCapital(delta decimal.Decimal) error {
	next := a.Capital.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INVALID_CAPITAL", "Capital cannot go negative")
	}
	a.Capital = next
	a.UpdatedAt = time.Now()
	return nil
}
