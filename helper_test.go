package inventory

import (
	"testing"
	"time"
)

// testClock returns a deterministic clock that ticks one second per call.
func testClock() Clock {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// newTestCatalog returns a catalog wired to a fresh ledger and a fixed clock.
func newTestCatalog(t *testing.T) (*ProductCatalog, *TransactionLedger) {
	t.Helper()
	ledger := NewTransactionLedger()
	return NewProductCatalog(ledger, testClock()), ledger
}

// laptop is the standard test product with the given stock levels.
func laptop(qty, min int) Product {
	return Product{ID: "P1", Name: "Laptop", Category: "Electronics", Price: USD(999.99), Quantity: qty, MinStock: min}
}
