package inventory

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// TransactionLedger is the append-only record of every stock movement.
//
// Records are kept in creation order, which is also transaction id order: ids
// come from a per-process counter starting at 1 and are never reused, even
// when a movement is later conceptually reversed by an opposite one.
type TransactionLedger struct {
	records []TransactionRecord
	seq     int
}

// NewTransactionLedger creates an empty ledger.
func NewTransactionLedger() *TransactionLedger {
	return &TransactionLedger{records: make([]TransactionRecord, 0)}
}

// append assigns the next transaction id and stores the record. Callers
// validate quantity and kind before appending; the ledger itself cannot fail.
func (l *TransactionLedger) append(productID string, kind Kind, quantity int, reason string, at time.Time) TransactionRecord {
	l.seq++
	rec := TransactionRecord{
		ID:        fmt.Sprintf("TXN%06d", l.seq),
		ProductID: productID,
		Kind:      kind,
		Quantity:  quantity,
		Reason:    reason,
		Timestamp: at,
	}
	l.records = append(l.records, rec)
	return rec
}

// Size returns the number of records appended so far.
func (l *TransactionLedger) Size() int { return len(l.records) }

// Recent returns the last min(limit, Size) records in chronological order,
// oldest first. A non-positive limit yields nothing. The result is a copy:
// reading it any number of times leaves the ledger untouched.
func (l *TransactionLedger) Recent(limit int) []TransactionRecord {
	if limit <= 0 {
		return nil
	}
	from := len(l.records) - limit
	if from < 0 {
		from = 0
	}
	return slices.Clone(l.records[from:])
}

// All iterates over every record in creation order.
func (l *TransactionLedger) All() iter.Seq[TransactionRecord] {
	return slices.Values(l.records)
}

// NetMovement folds the ledger for one product: total IN quantity minus total
// OUT quantity. For a product that never left the catalog this equals its
// current stock.
func (l *TransactionLedger) NetMovement(productID string) int {
	net := 0
	for _, rec := range l.records {
		if rec.ProductID != productID {
			continue
		}
		switch rec.Kind {
		case StockIn:
			net += rec.Quantity
		case StockOut:
			net -= rec.Quantity
		}
	}
	return net
}
