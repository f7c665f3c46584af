package inventory

import (
	"context"
	"time"

	"github.com/storeops/backend/internal/domain/inventory"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OperationLogListFilter is the request filter for the operations log
type OperationLogListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	Operation string     `form:"operation"`
	ProductID *uuid.UUID `form:"product_id"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// AuditService exposes the database-side inventory audit procedures. The
// audit, fix and logging algorithms live in the database; this service only
// invokes them and shapes their results.
type AuditService struct {
	auditRepo inventory.AuditRepository
	logger    *zap.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo inventory.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// AuditAccuracy runs the accuracy audit and groups findings by issue type
func (s *AuditService) AuditAccuracy(ctx context.Context) (*AuditResponse, error) {
	discrepancies, err := s.auditRepo.AuditAccuracy(ctx)
	if err != nil {
		return nil, err
	}

	resp := &AuditResponse{
		Discrepancies: make([]DiscrepancyResponse, 0, len(discrepancies)),
		IssueCounts:   make(map[string]int),
		Total:         len(discrepancies),
	}
	for _, d := range discrepancies {
		if !d.IssueType.IsValid() {
			s.logger.Warn("Audit returned unknown issue type",
				zap.String("issue_type", d.IssueType.String()),
				zap.String("product_id", d.ProductID.String()),
			)
			d.IssueType = inventory.IssueConsistencyError
		}
		resp.Discrepancies = append(resp.Discrepancies, ToDiscrepancyResponse(d))
		resp.IssueCounts[d.IssueType.String()]++
	}

	s.logger.Info("Inventory accuracy audit completed",
		zap.Int("discrepancies", resp.Total),
	)
	return resp, nil
}

// FixDiscrepancies applies the database-side corrections and returns how
// many rows were fixed
func (s *AuditService) FixDiscrepancies(ctx context.Context) (*FixResponse, error) {
	corrected, err := s.auditRepo.FixDiscrepancies(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory discrepancies fixed",
		zap.Int64("corrected_count", corrected),
	)
	return &FixResponse{CorrectedCount: corrected}, nil
}

// OperationsLog returns a paginated, filterable slice of the stock audit trail
func (s *AuditService) OperationsLog(ctx context.Context, filter OperationLogListFilter) ([]OperationLogEntryResponse, int64, error) {
	domainFilter := inventory.OperationLogFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
		},
		ProductID: filter.ProductID,
		Operation: filter.Operation,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	domainFilter.Normalize()

	entries, total, err := s.auditRepo.OperationsLog(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OperationLogEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToOperationLogEntryResponse(entry)
	}
	return responses, total, nil
}
