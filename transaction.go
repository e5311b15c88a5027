package inventory

import "time"

// Kind identifies the direction of a stock movement.
type Kind string

const (
	StockIn  Kind = "IN"  // stock entering the inventory
	StockOut Kind = "OUT" // stock leaving the inventory
)

// Reasons recorded when the caller does not provide one.
const (
	ReasonInitialStock = "Initial stock"
	ReasonStockIn      = "Stock In"
	ReasonStockOut     = "Stock Out"
)

// TransactionRecord is one entry of the transaction log.
//
// Records are immutable once appended. ProductID is a reference by value into
// the catalog's key space: deleting a product does not touch its history, so
// a record may outlive the product it names.
type TransactionRecord struct {
	ID        string
	ProductID string
	Kind      Kind
	Quantity  int // magnitude moved, never the resulting stock level
	Reason    string
	Timestamp time.Time
}
