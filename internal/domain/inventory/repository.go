package inventory

import (
	"context"
	"time"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OperationLogFilter narrows operations-log queries
type OperationLogFilter struct {
	shared.Filter
	ProductID *uuid.UUID
	Operation string
	StartDate *time.Time
	EndDate   *time.Time
}

// AuditRepository fronts the database-side audit procedures. The audit and
// fix algorithms live entirely in the database; this port only carries their
// inputs and outputs.
type AuditRepository interface {
	AuditAccuracy(ctx context.Context) ([]Discrepancy, error)
	FixDiscrepancies(ctx context.Context) (int64, error)
	OperationsLog(ctx context.Context, filter OperationLogFilter) ([]OperationLogEntry, int64, error)
}
