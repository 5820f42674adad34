// Package renderer turns ledger aggregates into markdown reports.
//
// Every report is a pure function from ledger data to a markdown
// string; the caller decides where it goes (terminal, file, pager).
package renderer

import (
	"fmt"
	"strings"
)

// reportBuilder accumulates markdown output.
type reportBuilder struct {
	*strings.Builder
}

func newReportBuilder() *reportBuilder {
	return &reportBuilder{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the report.
func (r *reportBuilder) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// shortID returns a display form of an entry ID, long enough to be
// unambiguous in practice while keeping table rows narrow.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// taxSuffix is appended to report titles when totals are net of tax.
func taxSuffix(applyTax bool) string {
	if applyTax {
		return " (after tax)"
	}
	return ""
}
