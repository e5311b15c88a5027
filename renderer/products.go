// Package renderer produces the markdown views shown by the desk commands.
// It reads core values and never mutates them.
package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/stockdesk/inventory"
)

// Products renders the whole catalog as a markdown table.
func Products(products []inventory.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Products")
	if len(products) == 0 {
		doc.PlainText("The catalog is empty.")
		return doc.String()
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID, p.Name, p.Category, p.Price.String(),
			strconv.Itoa(p.Quantity), strconv.Itoa(p.MinStock), status(p),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Category", "Price", "Quantity", "Min Stock", "Status"},
		Rows:   rows,
	})
	return doc.String()
}

// LowStock renders the products at or below their minimum stock level.
func LowStock(products []inventory.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Low Stock")
	if len(products) == 0 {
		doc.PlainText("All products are above their minimum stock level.")
		return doc.String()
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID, p.Name, strconv.Itoa(p.Quantity), strconv.Itoa(p.MinStock), p.Category,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Qty", "Min", "Category"},
		Rows:   rows,
	})
	return doc.String()
}

// status mirrors the desk convention: LOW at or below the minimum level.
func status(p inventory.Product) string {
	if p.IsLowStock() {
		return "LOW"
	}
	return "OK"
}
