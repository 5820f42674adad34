package renderer

import (
	"time"

	"github.com/etnz/tradecal"
)

// YearlyMarkdown renders a per-month summary table for a year, with
// the number of traded days and the signed net total of each month.
func YearlyMarkdown(l *tradecal.Ledger, year int, tax tradecal.TaxConfig, applyTax bool) string {
	r := newReportBuilder()
	r.Printf("# %d%s\n\n", year, taxSuffix(applyTax))

	totals := tradecal.DailyTotals(l, tax, applyTax)

	r.Printf("| Month | Days traded | Net | |\n")
	r.Printf("|:---|---:|---:|:---|\n")
	for m := time.January; m <= time.December; m++ {
		days := 0
		for on := range totals {
			if on.Year() == year && on.Month() == m {
				days++
			}
		}
		net := tradecal.MonthTotal(l, year, m, tax, applyTax)
		r.Printf("| %s | %d | %s | %s |\n",
			m, days, tradecal.SignedAmount(net), tradecal.Classify(net))
	}

	r.Printf("\n**Year total**: %s\n", tradecal.SignedAmount(tradecal.YearTotal(l, year, tax, applyTax)))
	return r.String()
}
