package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/storeops/backend/internal/domain/finance"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/storeops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindInPeriod finds expenses whose transaction date falls inside the
// inclusive [from, to] window
func (r *GormExpenseRepository) FindInPeriod(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	var expenseModels []models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("transaction_date BETWEEN ? AND ?", from, to).
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]finance.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = *expenseModels[i].ToDomain()
	}
	return expenses, nil
}

// Save persists a new expense
func (r *GormExpenseRepository) Save(ctx context.Context, e *finance.Expense) error {
	model := &models.ExpenseModel{}
	model.FromDomain(e)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete removes an expense record
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSettlementRepository implements finance.SettlementRepository using GORM
type GormSettlementRepository struct {
	db *gorm.DB
}

// NewGormSettlementRepository creates a new GormSettlementRepository
func NewGormSettlementRepository(db *gorm.DB) *GormSettlementRepository {
	return &GormSettlementRepository{db: db}
}

// FindInvoicesInPeriod finds settlement invoices dated inside the inclusive
// [from, to] window, regardless of status
func (r *GormSettlementRepository) FindInvoicesInPeriod(ctx context.Context, from, to time.Time) ([]finance.SettlementInvoice, error) {
	var invoiceModels []models.SettlementInvoiceModel
	if err := r.db.WithContext(ctx).
		Where("settlement_date BETWEEN ? AND ?", from, to).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]finance.SettlementInvoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *invoiceModels[i].ToDomain()
	}
	return invoices, nil
}

// FindCompletedByEmployee finds completed settlement invoices for an employee
func (r *GormSettlementRepository) FindCompletedByEmployee(ctx context.Context, employeeID uuid.UUID) ([]finance.SettlementInvoice, error) {
	var invoiceModels []models.SettlementInvoiceModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, finance.SettlementStatusCompleted).
		Order("settlement_date DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]finance.SettlementInvoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *invoiceModels[i].ToDomain()
	}
	return invoices, nil
}

// FindLedgerEntriesByOrders finds profit ledger entries for the given orders
func (r *GormSettlementRepository) FindLedgerEntriesByOrders(ctx context.Context, orderIDs []uuid.UUID) ([]finance.ProfitLedgerEntry, error) {
	if len(orderIDs) == 0 {
		return []finance.ProfitLedgerEntry{}, nil
	}

	var entryModels []models.ProfitLedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]finance.ProfitLedgerEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = *entryModels[i].ToDomain()
	}
	return entries, nil
}

// SaveInvoice persists a new settlement invoice
func (r *GormSettlementRepository) SaveInvoice(ctx context.Context, si *finance.SettlementInvoice) error {
	model := &models.SettlementInvoiceModel{}
	model.FromDomain(si)
	return r.db.WithContext(ctx).Create(model).Error
}

// SaveLedgerEntry persists a new profit ledger entry
func (r *GormSettlementRepository) SaveLedgerEntry(ctx context.Context, entry *finance.ProfitLedgerEntry) error {
	model := &models.ProfitLedgerEntryModel{}
	model.FromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// GormAccountingRepository implements finance.AccountingRepository using GORM
type GormAccountingRepository struct {
	db *gorm.DB
}

// NewGormAccountingRepository creates a new GormAccountingRepository
func NewGormAccountingRepository(db *gorm.DB) *GormAccountingRepository {
	return &GormAccountingRepository{db: db}
}

// Get returns the single store-level accounting row
func (r *GormAccountingRepository) Get(ctx context.Context) (*finance.Accounting, error) {
	var model models.AccountingModel
	if err := r.db.WithContext(ctx).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts the accounting row
func (r *GormAccountingRepository) Save(ctx context.Context, a *finance.Accounting) error {
	model := &models.AccountingModel{}
	model.FromDomain(a)
	return r.db.WithContext(ctx).Save(model).Error
}
