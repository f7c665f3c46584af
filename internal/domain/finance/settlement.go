package finance

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementStatus represents the state of a settlement invoice
type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "pending"
	SettlementStatusCompleted SettlementStatus = "completed"
	SettlementStatusCancelled SettlementStatus = "cancelled"
)

// IsValid checks if the status is a valid SettlementStatus
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementStatusPending, SettlementStatusCompleted, SettlementStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SettlementStatus
func (s SettlementStatus) String() string {
	return string(s)
}

// SettlementInvoice records profit amounts paid out to an employee
type SettlementInvoice struct {
	shared.BaseEntity
	InvoiceNumber  string
	EmployeeID     uuid.UUID
	TotalAmount    decimal.Decimal
	SettlementDate time.Time
	Status         SettlementStatus
}

// NewSettlementInvoice creates a pending settlement invoice
func NewSettlementInvoice(invoiceNumber string, employeeID uuid.UUID, totalAmount decimal.Decimal, settlementDate time.Time) (*SettlementInvoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Settlement amount cannot be negative")
	}
	return &SettlementInvoice{
		BaseEntity:     shared.NewBaseEntity(),
		InvoiceNumber:  invoiceNumber,
		EmployeeID:     employeeID,
		TotalAmount:    totalAmount,
		SettlementDate: settlementDate,
		Status:         SettlementStatusPending,
	}, nil
}

// Complete marks the invoice as paid out
func (si *SettlementInvoice) Complete() error {
	if si.Status != SettlementStatusPending {
		return shared.ErrInvalidState
	}
	si.Status = SettlementStatusCompleted
	si.UpdatedAt = time.Now()
	return nil
}

// IsCompleted reports whether the payout went through
func (si *SettlementInvoice) IsCompleted() bool {
	return si.Status == SettlementStatusCompleted
}

// ProfitLedgerEntry links a recognized order to a settlement payout. An order
// whose profit has been paid out to its owning employee gets exactly one
// ledger entry; orders without one are still owed.
type ProfitLedgerEntry struct {
	shared.BaseEntity
	OrderID    uuid.UUID
	EmployeeID uuid.UUID
	Amount     decimal.Decimal
	SettledAt  time.Time
}
