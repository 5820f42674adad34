package renderer

import (
	"github.com/etnz/tradecal"
)

// LogMarkdown renders the ledger as a flat markdown table, one row per
// entry in insertion order, with the ids needed by edit/rm/dup.
func LogMarkdown(l *tradecal.Ledger, filters ...func(tradecal.TradeEntry) bool) string {
	r := newReportBuilder()
	r.Printf("# Trade log\n\n")

	count := 0
	rows := newReportBuilder()
	for _, e := range l.Entries(filters...) {
		rows.Printf("| %s | %s | %s | %s | %s | %s | %s |\n",
			shortID(e.ID), e.Date, e.Symbol,
			tradecal.FormatAmount(e.Buy), tradecal.FormatAmount(e.Sell),
			e.Quantity.String(), tradecal.SignedAmount(e.Profit))
		count++
	}

	if count == 0 {
		r.Printf("No trades.\n")
		return r.String()
	}

	r.Printf("| ID | Date | Symbol | Buy | Sell | Qty | Profit |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|---:|\n")
	r.Printf("%s", rows.String())
	r.Printf("\n%d trades.\n", count)
	return r.String()
}
