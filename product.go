package inventory

import (
	"fmt"
	"strings"
	"time"
)

// Product is a single catalog entry.
//
// The id is the primary key: unique within the catalog and immutable after
// creation. Quantity is the only field touched by stock operations, and it
// only moves through the catalog so the transaction log stays a faithful
// history.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       Money
	Quantity    int
	MinStock    int
	LastUpdated time.Time
}

// IsLowStock reports whether the product is at or below its minimum stock
// level.
func (p Product) IsLowStock() bool { return p.Quantity <= p.MinStock }

// TotalValue returns the line value: price times quantity on hand.
func (p Product) TotalValue() Money { return p.Price.MulInt(p.Quantity) }

// validate checks the fields a caller controls at creation time.
func (p Product) validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product id is missing")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %q: price cannot be negative", p.ID)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product %q: quantity cannot be negative", p.ID)
	}
	if p.MinStock < 0 {
		return fmt.Errorf("product %q: minimum stock level cannot be negative", p.ID)
	}
	return nil
}
