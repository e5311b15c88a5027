package inventory

// Summary is a point-in-time report over the whole catalog. It is computed
// fresh from current state on every call, nothing is cached.
type Summary struct {
	Products   int
	TotalItems int
	TotalValue Money
	LowStock   []Product
}

// Summary computes the inventory summary report.
func (c *ProductCatalog) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Summary{Products: len(c.products)}
	for _, p := range c.products {
		s.TotalItems += p.Quantity
		s.TotalValue = s.TotalValue.Add(p.TotalValue())
	}
	s.LowStock = c.lowStockLocked()
	return s
}
