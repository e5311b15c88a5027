package inventory

import (
	"errors"
	"testing"
)

func TestAddProduct_RecordsInitialStock(t *testing.T) {
	c, l := newTestCatalog(t)

	if err := c.AddProduct(laptop(15, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	p, ok := c.Product("P1")
	if !ok {
		t.Fatal("product not found after add")
	}
	if p.Quantity != 15 {
		t.Errorf("Quantity = %d, want 15", p.Quantity)
	}
	if p.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped on creation")
	}

	if got, want := l.Size(), 1; got != want {
		t.Fatalf("ledger size = %d, want %d", got, want)
	}
	rec := l.Recent(1)[0]
	if rec.ID != "TXN000001" {
		t.Errorf("record ID = %q, want TXN000001", rec.ID)
	}
	if rec.Kind != StockIn || rec.Quantity != 15 {
		t.Errorf("record = %s %d, want IN 15", rec.Kind, rec.Quantity)
	}
	if rec.Reason != ReasonInitialStock {
		t.Errorf("record reason = %q, want %q", rec.Reason, ReasonInitialStock)
	}
	if rec.ProductID != "P1" {
		t.Errorf("record product = %q, want P1", rec.ProductID)
	}
}

func TestAddProduct_DuplicateID(t *testing.T) {
	c, l := newTestCatalog(t)
	if err := c.AddProduct(laptop(15, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	dup := laptop(99, 1)
	dup.Name = "Impostor"
	err := c.AddProduct(dup)
	if !IsDuplicateID(err) {
		t.Fatalf("AddProduct(duplicate) = %v, want DuplicateIDError", err)
	}

	// the existing product and the ledger are untouched
	p, _ := c.Product("P1")
	if p.Name != "Laptop" || p.Quantity != 15 {
		t.Errorf("existing product changed: %+v", p)
	}
	if got, want := l.Size(), 1; got != want {
		t.Errorf("ledger size = %d, want %d", got, want)
	}
}

func TestAddProduct_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		p    Product
	}{
		{"empty id", Product{ID: "  ", Name: "X", Price: USD(1)}},
		{"negative quantity", Product{ID: "P9", Name: "X", Price: USD(1), Quantity: -1}},
		{"negative min stock", Product{ID: "P9", Name: "X", Price: USD(1), MinStock: -1}},
		{"negative price", Product{ID: "P9", Name: "X", Price: USD(-0.01)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, l := newTestCatalog(t)
			if err := c.AddProduct(tc.p); err == nil {
				t.Fatal("AddProduct accepted an invalid product")
			}
			if l.Size() != 0 {
				t.Errorf("ledger size = %d after failed add, want 0", l.Size())
			}
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	c, l := newTestCatalog(t)
	if err := c.AddProduct(laptop(15, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	before, _ := c.Product("P1")

	if err := c.UpdateProduct("P1", "Laptop Pro", "Computers", USD(1299.99), 7); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	p, _ := c.Product("P1")
	if p.Name != "Laptop Pro" || p.Category != "Computers" || p.MinStock != 7 {
		t.Errorf("mutable fields not updated: %+v", p)
	}
	if !p.Price.Equal(USD(1299.99)) {
		t.Errorf("Price = %s, want %s", p.Price, USD(1299.99))
	}
	if p.Quantity != 15 {
		t.Errorf("Quantity = %d after update, want 15 (update never touches stock)", p.Quantity)
	}
	if !p.LastUpdated.After(before.LastUpdated) {
		t.Error("LastUpdated not refreshed by update")
	}
	// no quantity change, no record
	if got, want := l.Size(), 1; got != want {
		t.Errorf("ledger size = %d, want %d", got, want)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	c, _ := newTestCatalog(t)
	err := c.UpdateProduct("nope", "X", "Y", USD(1), 0)
	if !IsNotFound(err) {
		t.Fatalf("UpdateProduct(absent) = %v, want NotFoundError", err)
	}
}

func TestAddStock(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		qty      int
		reason   string
		wantErr  func(error) bool
		wantQty  int // quantity after the call
		wantSize int // ledger size after the call
	}{
		{name: "valid", id: "P1", qty: 10, reason: "Restock", wantQty: 25, wantSize: 2},
		{name: "default reason", id: "P1", qty: 5, wantQty: 20, wantSize: 2},
		{name: "zero quantity", id: "P1", qty: 0, wantErr: IsInvalidQuantity, wantQty: 15, wantSize: 1},
		{name: "negative quantity", id: "P1", qty: -3, wantErr: IsInvalidQuantity, wantQty: 15, wantSize: 1},
		{name: "absent product", id: "P9", qty: 10, wantErr: IsNotFound, wantQty: 15, wantSize: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, l := newTestCatalog(t)
			if err := c.AddProduct(laptop(15, 5)); err != nil {
				t.Fatalf("AddProduct: %v", err)
			}

			got, err := c.AddStock(tc.id, tc.qty, tc.reason)
			if tc.wantErr != nil {
				if err == nil || !tc.wantErr(err) {
					t.Fatalf("AddStock = %v, want matching error kind", err)
				}
			} else {
				if err != nil {
					t.Fatalf("AddStock: %v", err)
				}
				if got.Quantity != tc.wantQty {
					t.Errorf("returned Quantity = %d, want %d", got.Quantity, tc.wantQty)
				}
				rec := l.Recent(1)[0]
				if rec.Kind != StockIn || rec.Quantity != tc.qty {
					t.Errorf("record = %s %d, want IN %d", rec.Kind, rec.Quantity, tc.qty)
				}
				wantReason := tc.reason
				if wantReason == "" {
					wantReason = ReasonStockIn
				}
				if rec.Reason != wantReason {
					t.Errorf("record reason = %q, want %q", rec.Reason, wantReason)
				}
			}

			p, _ := c.Product("P1")
			if p.Quantity != tc.wantQty {
				t.Errorf("stored Quantity = %d, want %d", p.Quantity, tc.wantQty)
			}
			if l.Size() != tc.wantSize {
				t.Errorf("ledger size = %d, want %d", l.Size(), tc.wantSize)
			}
		})
	}
}

func TestRemoveStock(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		qty      int
		reason   string
		wantErr  func(error) bool
		wantQty  int
		wantSize int
	}{
		{name: "valid", id: "P1", qty: 11, reason: "Sold", wantQty: 4, wantSize: 2},
		{name: "default reason", id: "P1", qty: 1, wantQty: 14, wantSize: 2},
		{name: "all of it", id: "P1", qty: 15, wantQty: 0, wantSize: 2},
		{name: "zero quantity", id: "P1", qty: 0, wantErr: IsInvalidQuantity, wantQty: 15, wantSize: 1},
		{name: "negative quantity", id: "P1", qty: -2, wantErr: IsInvalidQuantity, wantQty: 15, wantSize: 1},
		{name: "more than on hand", id: "P1", qty: 16, wantErr: IsInsufficientStock, wantQty: 15, wantSize: 1},
		{name: "absent product", id: "P9", qty: 1, wantErr: IsNotFound, wantQty: 15, wantSize: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, l := newTestCatalog(t)
			if err := c.AddProduct(laptop(15, 5)); err != nil {
				t.Fatalf("AddProduct: %v", err)
			}

			got, err := c.RemoveStock(tc.id, tc.qty, tc.reason)
			if tc.wantErr != nil {
				if err == nil || !tc.wantErr(err) {
					t.Fatalf("RemoveStock = %v, want matching error kind", err)
				}
			} else {
				if err != nil {
					t.Fatalf("RemoveStock: %v", err)
				}
				if got.Quantity != tc.wantQty {
					t.Errorf("returned Quantity = %d, want %d", got.Quantity, tc.wantQty)
				}
				rec := l.Recent(1)[0]
				if rec.Kind != StockOut || rec.Quantity != tc.qty {
					t.Errorf("record = %s %d, want OUT %d", rec.Kind, rec.Quantity, tc.qty)
				}
				wantReason := tc.reason
				if wantReason == "" {
					wantReason = ReasonStockOut
				}
				if rec.Reason != wantReason {
					t.Errorf("record reason = %q, want %q", rec.Reason, wantReason)
				}
			}

			p, _ := c.Product("P1")
			if p.Quantity != tc.wantQty {
				t.Errorf("stored Quantity = %d, want %d", p.Quantity, tc.wantQty)
			}
			if l.Size() != tc.wantSize {
				t.Errorf("ledger size = %d, want %d", l.Size(), tc.wantSize)
			}
		})
	}
}

func TestRemoveStock_InsufficientDetails(t *testing.T) {
	c, _ := newTestCatalog(t)
	if err := c.AddProduct(laptop(4, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	_, err := c.RemoveStock("P1", 100, "")
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("RemoveStock = %v, want InsufficientStockError", err)
	}
	if insufficient.Requested != 100 || insufficient.Available != 4 {
		t.Errorf("error details = requested %d available %d, want 100 and 4",
			insufficient.Requested, insufficient.Available)
	}
}

func TestDeleteProduct_KeepsHistory(t *testing.T) {
	c, _ := newTestCatalog(t)
	if err := c.AddProduct(laptop(15, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if _, err := c.RemoveStock("P1", 11, ""); err != nil {
		t.Fatalf("RemoveStock: %v", err)
	}

	if err := c.DeleteProduct("P1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, ok := c.Product("P1"); ok {
		t.Error("product still present after delete")
	}
	if err := c.DeleteProduct("P1"); !IsNotFound(err) {
		t.Errorf("second delete = %v, want NotFoundError", err)
	}

	// history outlives the product
	recent := c.RecentTransactions(10)
	if len(recent) != 2 {
		t.Fatalf("RecentTransactions(10) returned %d records, want 2", len(recent))
	}
	for _, rec := range recent {
		if rec.ProductID != "P1" {
			t.Errorf("record references %q, want P1", rec.ProductID)
		}
	}
}

func TestLowStockScenario(t *testing.T) {
	c, l := newTestCatalog(t)

	if err := c.AddProduct(laptop(15, 5)); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	p, _ := c.Product("P1")
	if p.IsLowStock() {
		t.Error("IsLowStock = true at quantity 15, min 5")
	}

	if _, err := c.RemoveStock("P1", 11, ""); err != nil {
		t.Fatalf("RemoveStock: %v", err)
	}
	p, _ = c.Product("P1")
	if p.Quantity != 4 {
		t.Errorf("Quantity = %d, want 4", p.Quantity)
	}
	if !p.IsLowStock() {
		t.Error("IsLowStock = false at quantity 4, min 5")
	}
	if got := c.LowStockProducts(); len(got) != 1 || got[0].ID != "P1" {
		t.Errorf("LowStockProducts = %v, want [P1]", got)
	}

	if got, want := l.Size(), 2; got != want {
		t.Fatalf("ledger size = %d, want %d", got, want)
	}
	recs := l.Recent(2)
	if recs[0].Kind != StockIn || recs[0].Quantity != 15 {
		t.Errorf("first record = %s %d, want IN 15", recs[0].Kind, recs[0].Quantity)
	}
	if recs[1].Kind != StockOut || recs[1].Quantity != 11 {
		t.Errorf("second record = %s %d, want OUT 11", recs[1].Kind, recs[1].Quantity)
	}

	// a failed removal changes nothing
	if _, err := c.RemoveStock("P1", 100, ""); !IsInsufficientStock(err) {
		t.Fatalf("RemoveStock(100) = %v, want InsufficientStockError", err)
	}
	p, _ = c.Product("P1")
	if p.Quantity != 4 {
		t.Errorf("Quantity = %d after failed removal, want 4", p.Quantity)
	}
	if got, want := l.Size(), 2; got != want {
		t.Errorf("ledger size = %d after failed removal, want %d", got, want)
	}
}

func TestAuditRoundTrip(t *testing.T) {
	// IN minus OUT over the ledger always equals the quantity on hand for
	// products that were never deleted.
	c, l := newTestCatalog(t)
	if err := SeedDemo(c, "USD"); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	steps := []struct {
		id  string
		qty int // positive adds, negative removes
	}{
		{"P001", 5}, {"P001", -3}, {"P002", -20}, {"P003", 12}, {"P001", -8}, {"P005", -8},
	}
	for _, s := range steps {
		var err error
		if s.qty > 0 {
			_, err = c.AddStock(s.id, s.qty, "")
		} else {
			_, err = c.RemoveStock(s.id, -s.qty, "")
		}
		if err != nil {
			t.Fatalf("step %+v: %v", s, err)
		}
	}

	for _, p := range c.Products() {
		if net := l.NetMovement(p.ID); net != p.Quantity {
			t.Errorf("%s: net movement %d != quantity on hand %d", p.ID, net, p.Quantity)
		}
	}
}

func TestTotals(t *testing.T) {
	c, _ := newTestCatalog(t)
	if got := c.TotalItems(); got != 0 {
		t.Errorf("TotalItems on empty catalog = %d, want 0", got)
	}
	if got := c.TotalValue(); !got.IsZero() {
		t.Errorf("TotalValue on empty catalog = %s, want zero", got)
	}

	if err := SeedDemo(c, "USD"); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	if got, want := c.TotalItems(), 115; got != want {
		t.Errorf("TotalItems = %d, want %d", got, want)
	}
	if got, want := c.TotalValue(), USD(24098.85); !got.Equal(want) {
		t.Errorf("TotalValue = %s, want %s", got, want)
	}

	// computed fresh: a movement is reflected immediately
	if _, err := c.RemoveStock("P002", 50, ""); err != nil {
		t.Fatalf("RemoveStock: %v", err)
	}
	if got, want := c.TotalItems(), 65; got != want {
		t.Errorf("TotalItems after removal = %d, want %d", got, want)
	}
	if got, want := c.TotalValue(), USD(22599.35); !got.Equal(want) {
		t.Errorf("TotalValue after removal = %s, want %s", got, want)
	}
}

func TestSummary(t *testing.T) {
	c, _ := newTestCatalog(t)
	if err := SeedDemo(c, "USD"); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	if _, err := c.RemoveStock("P004", 8, ""); err != nil { // 12 -> 4, min 5
		t.Fatalf("RemoveStock: %v", err)
	}

	s := c.Summary()
	if s.Products != 5 {
		t.Errorf("Products = %d, want 5", s.Products)
	}
	if s.TotalItems != 107 {
		t.Errorf("TotalItems = %d, want 107", s.TotalItems)
	}
	if len(s.LowStock) != 1 || s.LowStock[0].ID != "P004" {
		t.Errorf("LowStock = %v, want [P004]", s.LowStock)
	}
}
