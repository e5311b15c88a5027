package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/stockdesk/inventory"
)

// timestampFormat is the display format of record timestamps.
const timestampFormat = "2006-01-02 15:04:05"

// Transactions renders movement records as a markdown table, newest first:
// the desk shows the latest activity at the top.
func Transactions(records []inventory.TransactionRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Recent Transactions")
	if len(records) == 0 {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}
	rows := make([][]string, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		rows = append(rows, []string{
			rec.ID, rec.ProductID, string(rec.Kind),
			strconv.Itoa(rec.Quantity), rec.Reason, rec.Timestamp.Format(timestampFormat),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Txn ID", "Product ID", "Type", "Qty", "Reason", "Timestamp"},
		Rows:   rows,
	})
	return doc.String()
}
