package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/stockdesk/inventory"
)

// Summary renders the inventory summary report.
func Summary(s inventory.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Inventory Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Products", strconv.Itoa(s.Products)},
			{"Total Items", strconv.Itoa(s.TotalItems)},
			{"Total Inventory Value", s.TotalValue.String()},
			{"Low Stock Items", strconv.Itoa(len(s.LowStock))},
		},
	})
	if len(s.LowStock) > 0 {
		doc.H2("Low Stock Products")
		items := make([]string, 0, len(s.LowStock))
		for _, p := range s.LowStock {
			items = append(items, fmt.Sprintf("%s (%s): %d remaining (min %d)", p.Name, p.ID, p.Quantity, p.MinStock))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}
