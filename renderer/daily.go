package renderer

import (
	"github.com/etnz/tradecal"
)

// DailyMarkdown renders the trades of a single day as a markdown table,
// one row per entry, followed by the day total.
func DailyMarkdown(l *tradecal.Ledger, on tradecal.Date, tax tradecal.TaxConfig, applyTax bool) string {
	r := newReportBuilder()
	r.Printf("# Trades on %s%s\n\n", on, taxSuffix(applyTax))

	count := 0
	rows := newReportBuilder()
	for _, e := range l.Entries(tradecal.OnDate(on)) {
		profit := e.Profit
		if applyTax {
			profit = tax.NetAfterTax(profit)
		}
		rows.Printf("| %s | %s | %s | %s | %s | %s |\n",
			shortID(e.ID), e.Symbol,
			tradecal.FormatAmount(e.Buy), tradecal.FormatAmount(e.Sell),
			e.Quantity.String(), tradecal.SignedAmount(profit))
		count++
	}

	if count == 0 {
		r.Printf("No trades.\n")
		return r.String()
	}

	r.Printf("| ID | Symbol | Buy | Sell | Qty | Profit |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|\n")
	r.Printf("%s", rows.String())
	r.Printf("\n**Total**: %s\n", tradecal.SignedAmount(tradecal.DailyTotal(l, on, tax, applyTax)))
	return r.String()
}
