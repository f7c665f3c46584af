package inventory

import (
	"time"

	"github.com/google/uuid"
)

// IssueType tags the kind of inconsistency the accuracy audit found between
// tracked stock counters and the facts derived from order history.
type IssueType string

const (
	IssueReservedMismatch  IssueType = "reserved_mismatch"
	IssueReservedOnly      IssueType = "reserved_only"
	IssueSoldMismatch      IssueType = "sold_mismatch"
	IssueSoldOnly          IssueType = "sold_only"
	IssueReservedAndSold   IssueType = "reserved_and_sold"
	IssueNegativeAvailable IssueType = "negative_available"
	IssueNegativeReserved  IssueType = "negative_reserved"
	IssueNegativeSold      IssueType = "negative_sold"
	IssueConsistencyError  IssueType = "consistency_error"
)

// IsValid checks if the issue type belongs to the fixed audit vocabulary
func (t IssueType) IsValid() bool {
	switch t {
	case IssueReservedMismatch, IssueReservedOnly, IssueSoldMismatch,
		IssueSoldOnly, IssueReservedAndSold, IssueNegativeAvailable,
		IssueNegativeReserved, IssueNegativeSold, IssueConsistencyError:
		return true
	}
	return false
}

// String returns the string representation of IssueType
func (t IssueType) String() string {
	return string(t)
}

// Discrepancy is one row returned by the audit procedure
type Discrepancy struct {
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name"`
	IssueType        IssueType `json:"issue_type"`
	ExpectedReserved int64     `json:"expected_reserved"`
	ActualReserved   int64     `json:"actual_reserved"`
	ExpectedSold     int64     `json:"expected_sold"`
	ActualSold       int64     `json:"actual_sold"`
	Available        int64     `json:"available"`
	DetectedAt       time.Time `json:"detected_at"`
}

// StockSnapshot captures stock counters at a point in time
type StockSnapshot struct {
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Sold      int64 `json:"sold"`
}

// OperationLogEntry is one row of the stock operations audit trail
type OperationLogEntry struct {
	ID          uuid.UUID     `json:"id"`
	ProductID   uuid.UUID     `json:"product_id"`
	ProductName string        `json:"product_name"`
	Operation   string        `json:"operation"`
	Quantity    int64         `json:"quantity"`
	Before      StockSnapshot `json:"before"`
	After       StockSnapshot `json:"after"`
	PerformedBy *uuid.UUID    `json:"performed_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
