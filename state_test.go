package tradecal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.json")

	s := OpenSession(path)
	if s.Ledger.Len() != 0 {
		t.Fatalf("fresh session has %d entries", s.Ledger.Len())
	}
	e := mustEntry(t, "2025-07-01", "7203.T", "2300", "2400", "100")
	if err := s.Ledger.Add(e); err != nil {
		t.Fatal(err)
	}
	s.Commit()

	again := OpenSession(path)
	if again.Ledger.Len() != 1 {
		t.Fatalf("reloaded session has %d entries, want 1", again.Ledger.Len())
	}
}

func TestSwapBackupRevertsLastCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.json")

	s := OpenSession(path)
	if err := s.Ledger.Add(mustEntry(t, "2025-07-01", "7203.T", "2300", "2400", "100")); err != nil {
		t.Fatal(err)
	}
	s.Commit()

	// second commit keeps the one-entry file as the backup
	if err := s.Ledger.Add(mustEntry(t, "2025-07-02", "9984.T", "9000", "8800", "10")); err != nil {
		t.Fatal(err)
	}
	s.Commit()

	if err := SwapBackup(path); err != nil {
		t.Fatal(err)
	}
	if got := OpenSession(path).Ledger.Len(); got != 1 {
		t.Fatalf("after revert ledger has %d entries, want 1", got)
	}

	// swapping again restores the reverted mutation
	if err := SwapBackup(path); err != nil {
		t.Fatal(err)
	}
	if got := OpenSession(path).Ledger.Len(); got != 2 {
		t.Fatalf("after second swap ledger has %d entries, want 2", got)
	}
}

func TestSwapBackupWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.json")
	if err := SwapBackup(path); err == nil {
		t.Fatal("want an error when no backup exists")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("swap must not create the snapshot file, stat: %v", err)
	}
}
