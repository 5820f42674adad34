package renderer

import (
	"strconv"
	"time"

	"github.com/etnz/tradecal"
	"github.com/shopspring/decimal"
)

// MonthlyMarkdown renders a month as a calendar table. Each cell holds
// the day number and, when the day has trades, its signed net total.
// The month total follows the table.
func MonthlyMarkdown(l *tradecal.Ledger, year int, month time.Month, tax tradecal.TaxConfig, applyTax bool) string {
	r := newReportBuilder()
	first := tradecal.NewDate(year, month, 1)
	r.Printf("# %s%s\n\n", first.Format("January 2006"), taxSuffix(applyTax))

	totals := tradecal.DailyTotals(l, tax, applyTax)

	r.Printf("| Sun | Mon | Tue | Wed | Thu | Fri | Sat |\n")
	r.Printf("|---:|---:|---:|---:|---:|---:|---:|\n")

	last := first.EndOfMonth().Day()
	col := int(first.Weekday()) // leading blanks before day 1
	r.Printf("|")
	for i := 0; i < col; i++ {
		r.Printf("  |")
	}
	for day := 1; day <= last; day++ {
		r.Printf(" %s |", dayCell(day, totals, tradecal.NewDate(year, month, day)))
		col++
		if col == 7 && day < last {
			col = 0
			r.Printf("\n|")
		}
	}
	for ; col < 7; col++ {
		r.Printf("  |")
	}
	r.Printf("\n")

	r.Printf("\n**Month total**: %s\n", tradecal.SignedAmount(tradecal.MonthTotal(l, year, month, tax, applyTax)))
	return r.String()
}

// dayCell renders one calendar cell. Days without trades show the day
// number alone; traded days add the signed total on a second line.
func dayCell(day int, totals map[tradecal.Date]decimal.Decimal, on tradecal.Date) string {
	total, traded := totals[on]
	if !traded {
		return strconv.Itoa(day)
	}
	return "**" + strconv.Itoa(day) + "**<br>" + tradecal.SignedAmount(total)
}
