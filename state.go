package tradecal

import (
	"errors"
	"io/fs"
	"log"
	"os"
)

// BackupSuffix is appended to the snapshot path to name the sidecar
// holding the pre-mutation file.
const BackupSuffix = ".bak"

// Session is the explicit application state of one editing session: the
// ledger plus the snapshot file backing it. It is created at session
// start, rehydrated from the snapshot when one exists, persisted after
// each destructive mutation, and discarded at session end.
//
// A session is single-user and synchronous; nothing here is safe for
// concurrent use.
type Session struct {
	Ledger *Ledger

	path     string
	readOnly bool // persistence failed once, keep operating in memory
}

// OpenSession loads the snapshot at path, or starts empty when there is
// none. A read failure degrades to an empty in-memory ledger with a
// logged warning.
func OpenSession(path string) *Session {
	l, err := LoadLedger(path)
	if err != nil {
		log.Printf("warning: %v (continuing in memory)", err)
	}
	return &Session{Ledger: l, path: path}
}

// Path returns the snapshot file backing the session. Empty for a
// purely in-memory session.
func (s *Session) Path() string { return s.path }

// Commit persists the ledger best-effort, keeping the previous file as
// a backup sidecar. A write failure switches the session to in-memory
// operation; it never fails the mutation that triggered it.
func (s *Session) Commit() {
	if s.path == "" {
		return
	}
	if err := backup(s.path); err != nil {
		log.Printf("warning: %v", err)
	}
	if err := SaveLedger(s.path, s.Ledger); err != nil {
		if !s.readOnly {
			log.Printf("warning: %v (ledger now in-memory only)", err)
		}
		s.readOnly = true
		return
	}
	s.readOnly = false
}

// backup copies the file at path to its backup sidecar. A missing file
// is not an error: there is simply nothing to back up.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path+BackupSuffix, data, 0644); err != nil {
		return &PersistenceError{Path: path + BackupSuffix, Err: err}
	}
	return nil
}

// SwapBackup exchanges the snapshot at path with its backup sidecar,
// reverting the last committed mutation. Calling it again swaps back.
func SwapBackup(path string) error {
	bak := path + BackupSuffix
	prev, err := os.ReadFile(bak)
	if err != nil {
		return &PersistenceError{Path: bak, Err: err}
	}
	cur, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cur = nil
	} else if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, prev, 0644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(bak, cur, 0644); err != nil {
		return &PersistenceError{Path: bak, Err: err}
	}
	return nil
}
