package inventory

import (
	"time"

	"github.com/storeops/backend/internal/domain/inventory"
)

// DiscrepancyResponse is one audit finding on the wire
type DiscrepancyResponse struct {
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	IssueType        string    `json:"issue_type"`
	ExpectedReserved int64     `json:"expected_reserved"`
	ActualReserved   int64     `json:"actual_reserved"`
	ExpectedSold     int64     `json:"expected_sold"`
	ActualSold       int64     `json:"actual_sold"`
	Available        int64     `json:"available"`
	DetectedAt       time.Time `json:"detected_at"`
}

// AuditResponse is the full result of an accuracy audit run
type AuditResponse struct {
	Discrepancies []DiscrepancyResponse `json:"discrepancies"`
	IssueCounts   map[string]int        `json:"issue_counts"`
	Total         int                   `json:"total"`
}

// FixResponse reports how many discrepancies the fix procedure corrected
type FixResponse struct {
	CorrectedCount int64 `json:"corrected_count"`
}

// StockSnapshotResponse mirrors inventory.StockSnapshot on the wire
type StockSnapshotResponse struct {
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Sold      int64 `json:"sold"`
}

// OperationLogEntryResponse is one operations-log row on the wire
type OperationLogEntryResponse struct {
	ID          string                `json:"id"`
	ProductID   string                `json:"product_id"`
	ProductName string                `json:"product_name"`
	Operation   string                `json:"operation"`
	Quantity    int64                 `json:"quantity"`
	Before      StockSnapshotResponse `json:"before"`
	After       StockSnapshotResponse `json:"after"`
	PerformedBy string                `json:"performed_by,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToDiscrepancyResponse converts a domain discrepancy to its wire shape
func ToDiscrepancyResponse(d inventory.Discrepancy) DiscrepancyResponse {
	return DiscrepancyResponse{
		ProductID:        d.ProductID.String(),
		ProductName:      d.ProductName,
		IssueType:        d.IssueType.String(),
		ExpectedReserved: d.ExpectedReserved,
		ActualReserved:   d.ActualReserved,
		ExpectedSold:     d.ExpectedSold,
		ActualSold:       d.ActualSold,
		Available:        d.Available,
		DetectedAt:       d.DetectedAt,
	}
}

// ToOperationLogEntryResponse converts a domain log entry to its wire shape
func ToOperationLogEntryResponse(e inventory.OperationLogEntry) OperationLogEntryResponse {
	resp := OperationLogEntryResponse{
		ID:          e.ID.String(),
		ProductID:   e.ProductID.String(),
		ProductName: e.ProductName,
		Operation:   e.Operation,
		Quantity:    e.Quantity,
		Before:      StockSnapshotResponse(e.Before),
		After:       StockSnapshotResponse(e.After),
		CreatedAt:   e.CreatedAt,
	}
	if e.PerformedBy != nil {
		resp.PerformedBy = e.PerformedBy.String()
	}
	return resp
}
