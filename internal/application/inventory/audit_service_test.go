package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storeops/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAuditRepository is a mock implementation of inventory.AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AuditAccuracy(ctx context.Context) ([]inventory.Discrepancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Discrepancy), args.Error(1)
}

func (m *MockAuditRepository) FixDiscrepancies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditRepository) OperationsLog(ctx context.Context, filter inventory.OperationLogFilter) ([]inventory.OperationLogEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.OperationLogEntry), args.Get(1).(int64), args.Error(2)
}

func TestAuditService_AuditAccuracy(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	repo.On("AuditAccuracy", mock.Anything).Return([]inventory.Discrepancy{
		{ProductID: uuid.New(), ProductName: "Shirt", IssueType: inventory.IssueReservedMismatch},
		{ProductID: uuid.New(), ProductName: "Shoes", IssueType: inventory.IssueReservedMismatch},
		{ProductID: uuid.New(), ProductName: "Hat", IssueType: inventory.IssueNegativeSold},
	}, nil)

	resp, err := svc.AuditAccuracy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Discrepancies, 3)
	assert.Equal(t, 2, resp.IssueCounts["reserved_mismatch"])
	assert.Equal(t, 1, resp.IssueCounts["negative_sold"])
}

func TestAuditService_AuditAccuracy_UnknownIssueTypeReclassified(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	repo.On("AuditAccuracy", mock.Anything).Return([]inventory.Discrepancy{
		{ProductID: uuid.New(), IssueType: inventory.IssueType("surprise")},
	}, nil)

	resp, err := svc.AuditAccuracy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "consistency_error", resp.Discrepancies[0].IssueType)
	assert.Equal(t, 1, resp.IssueCounts["consistency_error"])
}

func TestAuditService_AuditAccuracy_Empty(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	repo.On("AuditAccuracy", mock.Anything).Return([]inventory.Discrepancy{}, nil)

	resp, err := svc.AuditAccuracy(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Discrepancies)
	assert.Empty(t, resp.IssueCounts)
}

func TestAuditService_FixDiscrepancies(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	repo.On("FixDiscrepancies", mock.Anything).Return(int64(7), nil)

	resp, err := svc.FixDiscrepancies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.CorrectedCount)
}

func TestAuditService_FixDiscrepancies_Error(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	repo.On("FixDiscrepancies", mock.Anything).Return(int64(0), errors.New("procedure failed"))

	_, err := svc.FixDiscrepancies(context.Background())
	assert.Error(t, err)
}

func TestAuditService_OperationsLog_NormalizesPagination(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo, zap.NewNop())

	performedBy := uuid.New()
	entry := inventory.OperationLogEntry{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Shirt",
		Operation:   "reserve",
		Quantity:    3,
		Before:      inventory.StockSnapshot{Available: 10, Reserved: 0, Sold: 2},
		After:       inventory.StockSnapshot{Available: 7, Reserved: 3, Sold: 2},
		PerformedBy: &performedBy,
		CreatedAt:   time.Now(),
	}

	repo.On("OperationsLog", mock.Anything, mock.MatchedBy(func(f inventory.OperationLogFilter) bool {
		return f.Page == 1 && f.PageSize == 20
	})).Return([]inventory.OperationLogEntry{entry}, int64(1), nil)

	entries, total, err := svc.OperationsLog(context.Background(), OperationLogListFilter{Page: 0, PageSize: 0})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "reserve", entries[0].Operation)
	assert.Equal(t, int64(7), entries[0].After.Available)
	assert.Equal(t, performedBy.String(), entries[0].PerformedBy)
	repo.AssertExpectations(t)
}
