package inventory

// SeedDemo fills a catalog with the demo desk inventory, going through the
// normal add path so the ledger records the initial stock of each product.
func SeedDemo(c *ProductCatalog, currency string) error {
	demo := []Product{
		{ID: "P001", Name: "Laptop", Category: "Electronics", Price: M(999.99, currency), Quantity: 15, MinStock: 5},
		{ID: "P002", Name: "Mouse", Category: "Electronics", Price: M(29.99, currency), Quantity: 50, MinStock: 10},
		{ID: "P003", Name: "Keyboard", Category: "Electronics", Price: M(79.99, currency), Quantity: 30, MinStock: 8},
		{ID: "P004", Name: "Monitor", Category: "Electronics", Price: M(299.99, currency), Quantity: 12, MinStock: 5},
		{ID: "P005", Name: "Office Chair", Category: "Furniture", Price: M(199.99, currency), Quantity: 8, MinStock: 3},
	}
	for _, p := range demo {
		if err := c.AddProduct(p); err != nil {
			return err
		}
	}
	return nil
}
