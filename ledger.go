package tradecal

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger represents the ordered collection of trade entries.
//
// Order is insertion order; no semantic ranking is implied. Every
// destructive mutation pushes a full deep-copy snapshot before it
// applies, so Undo is the exact LIFO inverse of the last mutation.
type Ledger struct {
	entries []TradeEntry
	undo    [][]TradeEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]TradeEntry, 0)}
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// snapshot returns a deep copy of the current entries.
func (l *Ledger) snapshot() ([]TradeEntry, error) {
	// Entries are value types and decimals are immutable, so cloning the
	// slice is a full deep copy.
	return slices.Clone(l.entries), nil
}

// pushSnapshot captures the pre-mutation state. The caller must not
// mutate the ledger if it fails: snapshot first, then apply.
func (l *Ledger) pushSnapshot() error {
	s, err := l.snapshot()
	if err != nil {
		return fmt.Errorf("cannot capture undo snapshot: %w", err)
	}
	l.undo = append(l.undo, s)
	return nil
}

// Undo pops the last snapshot and replaces the entire ledger with it.
// It reports whether anything was restored; on an empty stack it is a
// no-op.
func (l *Ledger) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	last := len(l.undo) - 1
	l.entries = l.undo[last]
	l.undo = l.undo[:last]
	return true
}

// Add validates the entry, recomputes its profit and appends it.
func (l *Ledger) Add(e TradeEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	e.Recompute()
	if err := l.pushSnapshot(); err != nil {
		return err
	}
	l.entries = append(l.entries, e)
	return nil
}

// Import validates and appends entries in bulk as a single undoable
// mutation. Unlike Add it keeps the profit each entry carries, so
// explicit values from an imported file survive.
func (l *Ledger) Import(entries []TradeEntry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if err := l.pushSnapshot(); err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = NewID()
		}
		l.entries = append(l.entries, e)
	}
	return nil
}

// EntryPatch carries the fields of an update. Nil fields are left untouched.
type EntryPatch struct {
	Date     *Date
	Symbol   *string
	Buy      *decimal.Decimal
	Sell     *decimal.Decimal
	Quantity *decimal.Decimal
}

// Update applies the patch to the entry identified by id (a unique id
// prefix is accepted) and recomputes its profit.
func (l *Ledger) Update(id string, patch EntryPatch) (TradeEntry, error) {
	i, err := l.Find(id)
	if err != nil {
		return TradeEntry{}, err
	}
	e := l.entries[i]
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Symbol != nil {
		e.Symbol = *patch.Symbol
	}
	if patch.Buy != nil {
		e.Buy = *patch.Buy
	}
	if patch.Sell != nil {
		e.Sell = *patch.Sell
	}
	if patch.Quantity != nil {
		e.Quantity = *patch.Quantity
	}
	e.Recompute()
	if err := e.Validate(); err != nil {
		return TradeEntry{}, err
	}
	if err := l.pushSnapshot(); err != nil {
		return TradeEntry{}, err
	}
	l.entries[i] = e
	return e, nil
}

// Delete removes the entry identified by id.
func (l *Ledger) Delete(id string) error {
	i, err := l.Find(id)
	if err != nil {
		return err
	}
	if err := l.pushSnapshot(); err != nil {
		return err
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return nil
}

// Duplicate deep-copies the entry identified by id and appends the copy
// with identical fields under a fresh id.
func (l *Ledger) Duplicate(id string) (TradeEntry, error) {
	i, err := l.Find(id)
	if err != nil {
		return TradeEntry{}, err
	}
	dup := l.entries[i]
	dup.ID = NewID()
	if err := l.pushSnapshot(); err != nil {
		return TradeEntry{}, err
	}
	l.entries = append(l.entries, dup)
	return dup, nil
}

// Find locates the entry whose id matches, or starts with, the given
// string. It fails when the prefix is ambiguous or matches nothing.
func (l *Ledger) Find(id string) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("empty entry id")
	}
	found := -1
	for i, e := range l.entries {
		if e.ID == id {
			return i, nil
		}
		if strings.HasPrefix(e.ID, id) {
			if found >= 0 {
				return 0, fmt.Errorf("ambiguous entry id %q", id)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("no entry with id %q", id)
	}
	return found, nil
}

// Entries returns an iterator that yields each entry in insertion
// order. Filters narrow: an entry is yielded when every filter accepts
// it, so with no filters every entry is yielded.
func (l *Ledger) Entries(filters ...func(TradeEntry) bool) iter.Seq2[int, TradeEntry] {
	return func(yield func(int, TradeEntry) bool) {
	next:
		for i, e := range l.entries {
			for _, filter := range filters {
				if !filter(e) {
					continue next
				}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// UsedSymbols yields the distinct non-empty symbols of the ledger, in
// first-use order.
func (l *Ledger) UsedSymbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, e := range l.entries {
			if e.Symbol == "" {
				continue
			}
			if _, ok := visited[e.Symbol]; ok {
				continue
			}
			visited[e.Symbol] = struct{}{}
			if !yield(e.Symbol) {
				return
			}
		}
	}
}

// OnDate returns a predicate that filters entries by calendar day.
func OnDate(on Date) func(TradeEntry) bool {
	return func(e TradeEntry) bool { return e.Date == on }
}

// InMonth returns a predicate that filters entries by calendar month.
func InMonth(year int, month int) func(TradeEntry) bool {
	return func(e TradeEntry) bool {
		return e.Date.Year() == year && int(e.Date.Month()) == month
	}
}

// InYear returns a predicate that filters entries by calendar year.
func InYear(year int) func(TradeEntry) bool {
	return func(e TradeEntry) bool { return e.Date.Year() == year }
}
