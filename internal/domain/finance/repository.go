package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseRepository provides persistence for expense records
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindInPeriod(ctx context.Context, from, to time.Time) ([]Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettlementRepository provides persistence for settlement invoices and the
// profit ledger
type SettlementRepository interface {
	FindInvoicesInPeriod(ctx context.Context, from, to time.Time) ([]SettlementInvoice, error)
	FindCompletedByEmployee(ctx context.Context, employeeID uuid.UUID) ([]SettlementInvoice, error)
	FindLedgerEntriesByOrders(ctx context.Context, orderIDs []uuid.UUID) ([]ProfitLedgerEntry, error)
	SaveInvoice(ctx context.Context, si *SettlementInvoice) error
	SaveLedgerEntry(ctx context.Context, entry *ProfitLedgerEntry) error
}

// AccountingRepository provides access to the store-level accounting row
type AccountingRepository interface {
	Get(ctx context.Context) (*Accounting, error)
	Save(ctx context.Context, a *Accounting) error
}
