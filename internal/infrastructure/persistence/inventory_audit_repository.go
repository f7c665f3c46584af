package persistence

import (
	"context"
	"time"

	"github.com/storeops/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditRepository implements inventory.AuditRepository. The accuracy
// audit and the fix procedure live in the database as stored functions;
// this repository only invokes them and maps their result sets.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

type discrepancyRow struct {
	ProductID        uuid.UUID `gorm:"column:product_id"`
	ProductName      string    `gorm:"column:product_name"`
	IssueType        string    `gorm:"column:issue_type"`
	ExpectedReserved int64     `gorm:"column:expected_reserved"`
	ActualReserved   int64     `gorm:"column:actual_reserved"`
	ExpectedSold     int64     `gorm:"column:expected_sold"`
	ActualSold       int64     `gorm:"column:actual_sold"`
	Available        int64     `gorm:"column:available"`
}

// AuditAccuracy runs the stock accuracy audit procedure and returns the
// discrepancies it found
func (r *GormAuditRepository) AuditAccuracy(ctx context.Context) ([]inventory.Discrepancy, error) {
	var rows []discrepancyRow
	if err := r.db.WithContext(ctx).
		Raw("SELECT * FROM audit_inventory_accuracy()").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	detectedAt := time.Now()
	discrepancies := make([]inventory.Discrepancy, len(rows))
	for i, row := range rows {
		discrepancies[i] = inventory.Discrepancy{
			ProductID:        row.ProductID,
			ProductName:      row.ProductName,
			IssueType:        inventory.IssueType(row.IssueType),
			ExpectedReserved: row.ExpectedReserved,
			ActualReserved:   row.ActualReserved,
			ExpectedSold:     row.ExpectedSold,
			ActualSold:       row.ActualSold,
			Available:        row.Available,
			DetectedAt:       detectedAt,
		}
	}
	return discrepancies, nil
}

// FixDiscrepancies runs the corrective procedure and returns the number of
// products it corrected
func (r *GormAuditRepository) FixDiscrepancies(ctx context.Context) (int64, error) {
	var corrected int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT fix_inventory_discrepancies()").
		Scan(&corrected).Error; err != nil {
		return 0, err
	}
	return corrected, nil
}

type operationLogRow struct {
	ID              uuid.UUID  `gorm:"column:id"`
	ProductID       uuid.UUID  `gorm:"column:product_id"`
	ProductName     string     `gorm:"column:product_name"`
	Operation       string     `gorm:"column:operation"`
	Quantity        int64      `gorm:"column:quantity"`
	AvailableBefore int64      `gorm:"column:available_before"`
	ReservedBefore  int64      `gorm:"column:reserved_before"`
	SoldBefore      int64      `gorm:"column:sold_before"`
	AvailableAfter  int64      `gorm:"column:available_after"`
	ReservedAfter   int64      `gorm:"column:reserved_after"`
	SoldAfter       int64      `gorm:"column:sold_after"`
	PerformedBy     *uuid.UUID `gorm:"column:performed_by"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (operationLogRow) TableName() string {
	return "inventory_operations_log"
}

// OperationsLog returns the stock operations audit trail, newest first
func (r *GormAuditRepository) OperationsLog(ctx context.Context, filter inventory.OperationLogFilter) ([]inventory.OperationLogEntry, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&operationLogRow{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Operation != "" {
		query = query.Where("operation = ?", filter.Operation)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []operationLogRow
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]inventory.OperationLogEntry, len(rows))
	for i, row := range rows {
		entries[i] = inventory.OperationLogEntry{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Operation:   row.Operation,
			Quantity:    row.Quantity,
			Before: inventory.StockSnapshot{
				Available: row.AvailableBefore,
				Reserved:  row.ReservedBefore,
				Sold:      row.SoldBefore,
			},
			After: inventory.StockSnapshot{
				Available: row.AvailableAfter,
				Reserved:  row.ReservedAfter,
				Sold:      row.SoldAfter,
			},
			PerformedBy: row.PerformedBy,
			CreatedAt:   row.CreatedAt,
		}
	}
	return entries, total, nil
}
