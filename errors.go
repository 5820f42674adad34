package tradecal

import "fmt"

// The error taxonomy mirrors the propagation policy: only direct-entry
// validation surfaces as a user-blocking error. Everything crossing an
// I/O boundary degrades to an empty result plus one of these typed
// errors so the caller can decide whether to warn.

// ValidationError reports malformed or negative input on direct entry.
// It blocks the mutation and is meant to be shown to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigError reports an out-of-range or unparsable configuration value.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Setting, e.Reason)
}

// ParseError reports a single CSV row that failed to parse. The row is
// skipped and the import continues.
type ParseError struct {
	Row    int // 1-based data row index, header excluded
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// NetworkError tags a best-effort remote call failure. It never blocks
// an operation; the result degrades to empty.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// PersistenceError reports a ledger file read or write failure. The
// ledger keeps operating in memory.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger file %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
