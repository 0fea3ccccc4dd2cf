package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Kind identifies the type of a recorded transaction.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Record is a single history entry. Immutable once appended.
type Record struct {
	ID        string
	Kind      Kind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// History is an append-only log of successful transactions for one account.
// Insertion order is chronological order.
type History struct {
	records []Record
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Record appends an entry with the current timestamp. Callers only record
// transactions that already succeeded, so no validation happens here.
func (h *History) Record(kind Kind, amount decimal.Decimal) Record {
	rec := Record{
		ID:        ulid.Make().String(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	h.records = append(h.records, rec)
	return rec
}

// Entries returns the records in insertion order, most recent last.
// The returned slice is a copy; mutating it does not affect the history.
func (h *History) Entries() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// CountByKind returns how many records of the given kind were ever appended.
func (h *History) CountByKind(kind Kind) int {
	n := 0
	for _, rec := range h.records {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}
