package inventory

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// ProductCatalog owns the set of products and is the sole trigger of ledger
// appends: every quantity change goes through AddStock or RemoveStock, which
// mutate the product and append the matching record as one step. Coupling
// the two here keeps the recorded history from drifting away from actual
// stock.
//
// The catalog expects at most one in-flight call at a time. The mutex makes
// each compound operation atomic for any wrapper that shares the catalog
// across goroutines anyway; there is no finer-grained locking.
type ProductCatalog struct {
	mu       sync.Mutex
	products map[string]*Product
	ledger   *TransactionLedger
	now      Clock
}

// NewProductCatalog creates an empty catalog writing stock movements to
// ledger. A nil clock defaults to time.Now.
func NewProductCatalog(ledger *TransactionLedger, now Clock) *ProductCatalog {
	if now == nil {
		now = time.Now
	}
	return &ProductCatalog{
		products: make(map[string]*Product),
		ledger:   ledger,
		now:      now,
	}
}

// AddProduct inserts a new product and records its initial quantity as an IN
// movement. It fails with DuplicateIDError when the id is already taken,
// leaving catalog and ledger untouched.
func (c *ProductCatalog) AddProduct(p Product) error {
	if err := p.validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.products[p.ID]; exists {
		return &DuplicateIDError{ID: p.ID}
	}
	p.LastUpdated = c.now()
	c.products[p.ID] = &p
	c.ledger.append(p.ID, StockIn, p.Quantity, ReasonInitialStock, p.LastUpdated)
	return nil
}

// UpdateProduct overwrites the mutable fields of an existing product.
// Quantity is deliberately not among them: it only moves through AddStock and
// RemoveStock, so that every change leaves a trace in the ledger.
func (c *ProductCatalog) UpdateProduct(id, name, category string, price Money, minStock int) error {
	if price.IsNegative() {
		return fmt.Errorf("product %q: price cannot be negative", id)
	}
	if minStock < 0 {
		return fmt.Errorf("product %q: minimum stock level cannot be negative", id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	p.Name = name
	p.Category = category
	p.Price = price
	p.MinStock = minStock
	p.LastUpdated = c.now()
	return nil
}

// DeleteProduct removes a product unconditionally. The ledger keeps every
// record referencing the id: history is immutable regardless of product
// lifecycle.
func (c *ProductCatalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(c.products, id)
	return nil
}

// AddStock increases the quantity on hand by qty and appends the matching IN
// record. An empty reason defaults to "Stock In". It returns the product
// state after the movement.
func (c *ProductCatalog) AddStock(id string, qty int, reason string) (Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return Product{}, &NotFoundError{ID: id}
	}
	if qty <= 0 {
		return Product{}, &InvalidQuantityError{Quantity: qty}
	}
	if reason == "" {
		reason = ReasonStockIn
	}
	p.Quantity += qty
	p.LastUpdated = c.now()
	c.ledger.append(id, StockIn, qty, reason, p.LastUpdated)
	return *p, nil
}

// RemoveStock decreases the quantity on hand by qty and appends the matching
// OUT record. It fails with InsufficientStockError when qty exceeds the
// quantity on hand. An empty reason defaults to "Stock Out".
func (c *ProductCatalog) RemoveStock(id string, qty int, reason string) (Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return Product{}, &NotFoundError{ID: id}
	}
	if qty <= 0 {
		return Product{}, &InvalidQuantityError{Quantity: qty}
	}
	if p.Quantity < qty {
		return Product{}, &InsufficientStockError{ID: id, Requested: qty, Available: p.Quantity}
	}
	if reason == "" {
		reason = ReasonStockOut
	}
	p.Quantity -= qty
	p.LastUpdated = c.now()
	c.ledger.append(id, StockOut, qty, reason, p.LastUpdated)
	return *p, nil
}

// Product returns a copy of the product with this id.
func (c *ProductCatalog) Product(id string) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Products returns all products sorted by id, so tables and exports come out
// stable.
func (c *ProductCatalog) Products() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	products := make([]Product, 0, len(c.products))
	for _, id := range slices.Sorted(maps.Keys(c.products)) {
		products = append(products, *c.products[id])
	}
	return products
}

// LowStockProducts returns the products at or below their minimum stock
// level, sorted by id.
func (c *ProductCatalog) LowStockProducts() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lowStockLocked()
}

func (c *ProductCatalog) lowStockLocked() []Product {
	var low []Product
	for _, id := range slices.Sorted(maps.Keys(c.products)) {
		if p := c.products[id]; p.IsLowStock() {
			low = append(low, *p)
		}
	}
	return low
}

// TotalItems sums the quantity on hand over the whole catalog.
func (c *ProductCatalog) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, p := range c.products {
		total += p.Quantity
	}
	return total
}

// TotalValue sums the line values over the whole catalog, computed fresh on
// every call.
func (c *ProductCatalog) TotalValue() Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total Money
	for _, p := range c.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RecentTransactions returns the last min(limit, ledger size) movement
// records, oldest first. It goes through the catalog so readers share the
// same exclusion boundary as the writers.
func (c *ProductCatalog) RecentTransactions(limit int) []TransactionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Recent(limit)
}

// TransactionCount returns the ledger size.
func (c *ProductCatalog) TransactionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Size()
}
