package finance

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Free-text expense categories carry whatever the bookkeeper typed, but two
// spellings are recognized and bucketed apart from operating expenses:
// employee dues are owed profit shares, merchandise purchases are capitalized
// as inventory cost rather than expensed against the period.
const (
	CategoryEmployeeDues        = "مستحقات الموظفين"
	CategoryMerchandisePurchase = "شراء بضاعة"
)

// ExpenseBucket classifies an expense for profit-and-loss purposes
type ExpenseBucket string

const (
	BucketOperating ExpenseBucket = "operating"
	BucketEmployee  ExpenseBucket = "employee_dues"
	BucketPurchase  ExpenseBucket = "merchandise_purchase"
)

// Expense is a recorded cash outflow
type Expense struct {
	shared.BaseEntity
	Amount          decimal.Decimal
	Description     string
	Category        string
	TransactionDate time.Time
}

// NewExpense creates a new expense record
func NewExpense(amount decimal.Decimal, category, description string, transactionDate time.Time) (*Expense, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	if transactionDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	return &Expense{
		BaseEntity:      shared.NewBaseEntity(),
		Amount:          amount,
		Description:     description,
		Category:        category,
		TransactionDate: transactionDate,
	}, nil
}

// Bucket returns the profit-and-loss bucket for this expense
func (e *Expense) Bucket() ExpenseBucket {
	switch e.Category {
	case CategoryEmployeeDues:
		return BucketEmployee
	case CategoryMerchandisePurchase:
		return BucketPurchase
	default:
		return BucketOperating
	}
}
