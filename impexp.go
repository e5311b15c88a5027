package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file implements the desk's only text surface: a CSV projection of the
// current catalog state. It is read-only; the caller picks the sink.

// ExportCSV writes one row per product after a fixed header row. Prices are
// written with two decimals in major units, without a currency symbol.
func ExportCSV(w io.Writer, products []Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "category", "price", "quantity", "minStock"}); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, p := range products {
		row := []string{
			p.ID,
			p.Name,
			p.Category,
			p.Price.Amount().StringFixed(2),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStock),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write product %q: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
