package tradecal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aggregation sums ledger entries into day, month and year totals.
// Totals are additive: a month total equals the sum of its day totals,
// a year total the sum of its month totals. Tax, when applied, is
// applied per entry so the property holds with and without it.

// Classification of a profit amount for display.
type Classification int

const (
	Neutral Classification = iota // exactly zero, its own class
	Gain
	Loss
)

func (c Classification) String() string {
	switch c {
	case Gain:
		return "gain"
	case Loss:
		return "loss"
	default:
		return "neutral"
	}
}

// Classify returns the display class of an amount. Zero is neutral,
// grouped with neither sign.
func Classify(amount decimal.Decimal) Classification {
	switch {
	case amount.IsPositive():
		return Gain
	case amount.IsNegative():
		return Loss
	default:
		return Neutral
	}
}

// entryProfit applies the tax model to a single entry's profit.
func entryProfit(e TradeEntry, tax TaxConfig, applyTax bool) decimal.Decimal {
	if applyTax {
		return tax.NetAfterTax(e.Profit)
	}
	return e.Profit
}

// DailyTotals sums profits per calendar day, net of tax if applyTax.
// Entries without a usable date are skipped.
func DailyTotals(l *Ledger, tax TaxConfig, applyTax bool) map[Date]decimal.Decimal {
	totals := make(map[Date]decimal.Decimal)
	for _, e := range l.Entries() {
		if e.Date.IsZero() {
			continue
		}
		totals[e.Date] = totals[e.Date].Add(entryProfit(e, tax, applyTax))
	}
	return totals
}

// DailyTotal sums the profit of a single day.
func DailyTotal(l *Ledger, on Date, tax TaxConfig, applyTax bool) decimal.Decimal {
	var total decimal.Decimal
	for _, e := range l.Entries(OnDate(on)) {
		total = total.Add(entryProfit(e, tax, applyTax))
	}
	return total
}

// MonthTotal sums the profit of a calendar month.
func MonthTotal(l *Ledger, year int, month time.Month, tax TaxConfig, applyTax bool) decimal.Decimal {
	var total decimal.Decimal
	for _, e := range l.Entries(InMonth(year, int(month))) {
		total = total.Add(entryProfit(e, tax, applyTax))
	}
	return total
}

// YearTotal sums the profit of a calendar year.
func YearTotal(l *Ledger, year int, tax TaxConfig, applyTax bool) decimal.Decimal {
	var total decimal.Decimal
	for _, e := range l.Entries(InYear(year)) {
		total = total.Add(entryProfit(e, tax, applyTax))
	}
	return total
}
