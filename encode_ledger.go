package tradecal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// snapshotFile is the on-disk shape of the ledger: the entries plus the
// time they were saved.
type snapshotFile struct {
	Items   []TradeEntry `json:"items"`
	SavedAt string       `json:"savedAt"`
}

// EncodeLedger writes the ledger snapshot `{items, savedAt}` to w.
func EncodeLedger(w io.Writer, l *Ledger) error {
	s := snapshotFile{
		Items:   l.entries,
		SavedAt: time.Now().UTC().Format(DatetimeFormat),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode ledger snapshot: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger snapshot from r. A snapshot that does not
// hold a sequence of items yields an empty ledger, never an error: a
// corrupt file must not take the session down.
func DecodeLedger(r io.Reader) *Ledger {
	var s snapshotFile
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return NewLedger()
	}
	l := NewLedger()
	for _, e := range s.Items {
		if e.ID == "" {
			// Snapshots written before entries had ids: assign one now.
			e.ID = NewID()
		}
		l.entries = append(l.entries, e)
	}
	return l
}

// LoadLedger reads the snapshot file at path. The returned ledger is
// always usable; the error, when non-nil, is a PersistenceError meant
// as a warning (a missing file is a normal first run and returns no
// error).
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), &PersistenceError{Path: path, Err: err}
	}
	defer f.Close()
	return DecodeLedger(f), nil
}

// SaveLedger writes the snapshot file atomically (temp file + rename)
// so a failed write never truncates the previous snapshot.
func SaveLedger(path string, l *Ledger) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return &PersistenceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
