package models

import (
	"time"

	"github.com/storeops/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for expense records.
type ExpenseModel struct {
	BaseModel
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description     string          `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(200);not null;index"`
	TransactionDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:      m.BaseModel.ToDomain(),
		Amount:          m.Amount,
		Description:     m.Description,
		Category:        m.Category,
		TransactionDate: m.TransactionDate,
	}
}

// FromDomain populates the persistence model from a domain Expense
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Amount = e.Amount
	m.Description = e.Description
	m.Category = e.Category
	m.TransactionDate = e.TransactionDate
}

// SettlementInvoiceModel is the persistence model for settlement invoices.
type SettlementInvoiceModel struct {
	BaseModel
	InvoiceNumber  string                   `gorm:"type:varchar(50);not null;uniqueIndex"`
	EmployeeID     uuid.UUID                `gorm:"type:uuid;not null;index"`
	TotalAmount    decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	SettlementDate time.Time                `gorm:"not null;index"`
	Status         finance.SettlementStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (SettlementInvoiceModel) TableName() string {
	return "settlement_invoices"
}

// ToDomain converts the persistence model to a domain SettlementInvoice
func (m *SettlementInvoiceModel) ToDomain() *finance.SettlementInvoice {
	return &finance.SettlementInvoice{
		BaseEntity:     m.BaseModel.ToDomain(),
		InvoiceNumber:  m.InvoiceNumber,
		EmployeeID:     m.EmployeeID,
		TotalAmount:    m.TotalAmount,
		SettlementDate: m.SettlementDate,
		Status:         m.Status,
	}
}

// FromDomain populates the persistence model from a domain SettlementInvoice
func (m *SettlementInvoiceModel) FromDomain(si *finance.SettlementInvoice) {
	m.FromDomainBaseEntity(si.BaseEntity)
	m.InvoiceNumber = si.InvoiceNumber
	m.EmployeeID = si.EmployeeID
	m.TotalAmount = si.TotalAmount
	m.SettlementDate = si.SettlementDate
	m.Status = si.Status
}

// ProfitLedgerEntryModel is the persistence model for profit ledger entries.
// One row per settled order.
type ProfitLedgerEntryModel struct {
	BaseModel
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SettledAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProfitLedgerEntryModel) TableName() string {
	return "profit_ledger_entries"
}

// ToDomain converts the persistence model to a domain ProfitLedgerEntry
func (m *ProfitLedgerEntryModel) ToDomain() *finance.ProfitLedgerEntry {
	return &finance.ProfitLedgerEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		EmployeeID: m.EmployeeID,
		Amount:     m.Amount,
		SettledAt:  m.SettledAt,
	}
}

// FromDomain populates the persistence model from a domain ProfitLedgerEntry
func (m *ProfitLedgerEntryModel) FromDomain(e *finance.ProfitLedgerEntry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.OrderID = e.OrderID
	m.EmployeeID = e.EmployeeID
	m.Amount = e.Amount
	m.SettledAt = e.SettledAt
}

// AccountingModel is the persistence model for the single-row accounting
// aggregate.
type AccountingModel struct {
	BaseModel
	Capital decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (AccountingModel) TableName() string {
	return "accounting"
}

// ToDomain converts the persistence model to a domain Accounting
func (m *AccountingModel) ToDomain() *finance.Accounting {
	return &finance.Accounting{
		BaseEntity: m.BaseModel.ToDomain(),
		Capital:    m.Capital,
	}
}

// FromDomain populates the persistence model from a domain Accounting
func (m *AccountingModel) FromDomain(a *finance.Accounting) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Capital = a.Capital
}
