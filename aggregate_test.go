package tradecal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// buildLedger returns a ledger spanning two months and two years.
func buildLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, e := range []TradeEntry{
		mustEntry(t, "2025-10-01", "7203.T", "2400", "2500", "100"), // +10000
		mustEntry(t, "2025-10-01", "9984.T", "9100", "9000", "10"),  // -1000
		mustEntry(t, "2025-10-15", "7203.T", "2500", "2500", "100"), // 0
		mustEntry(t, "2025-11-02", "7203.T", "2500", "2450", "100"), // -5000
		mustEntry(t, "2024-12-30", "6758.T", "1300", "1350", "200"), // +10000
	} {
		if err := l.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestDailyTotals(t *testing.T) {
	l := buildLedger(t)
	totals := DailyTotals(l, DefaultTaxConfig(), false)

	testCases := []struct {
		date string
		want string
	}{
		{"2025-10-01", "9000"},
		{"2025-10-15", "0"},
		{"2025-11-02", "-5000"},
		{"2024-12-30", "10000"},
	}
	for _, tc := range testCases {
		got := totals[MustParseDate(tc.date)]
		if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
			t.Errorf("daily total %s = %s, want %s", tc.date, got, want)
		}
	}
	if len(totals) != 4 {
		t.Errorf("distinct days = %d, want 4", len(totals))
	}
}

func TestDailyTotal_TaxAdjusted(t *testing.T) {
	l := NewLedger()
	if err := l.Add(mustEntry(t, "2025-10-01", "7203.T", "2400", "2500", "100")); err != nil {
		t.Fatal(err)
	}
	got := DailyTotal(l, MustParseDate("2025-10-01"), DefaultTaxConfig(), true)
	if want := decimal.RequireFromString("7968.5"); !got.Equal(want) {
		t.Errorf("tax-adjusted daily total = %s, want %s", got, want)
	}
}

// Additivity: month totals are the sum of their day totals, year totals
// the sum of their month totals, with or without the tax adjustment.
func TestAggregation_Additivity(t *testing.T) {
	l := buildLedger(t)
	for _, applyTax := range []bool{false, true} {
		cfg := DefaultTaxConfig()
		daily := DailyTotals(l, cfg, applyTax)

		var oct decimal.Decimal
		for d, v := range daily {
			if d.Year() == 2025 && d.Month() == time.October {
				oct = oct.Add(v)
			}
		}
		if got := MonthTotal(l, 2025, time.October, cfg, applyTax); !got.Equal(oct) {
			t.Errorf("applyTax=%v: MonthTotal = %s, sum of daily totals = %s", applyTax, got, oct)
		}

		var year decimal.Decimal
		for m := time.January; m <= time.December; m++ {
			year = year.Add(MonthTotal(l, 2025, m, cfg, applyTax))
		}
		if got := YearTotal(l, 2025, cfg, applyTax); !got.Equal(year) {
			t.Errorf("applyTax=%v: YearTotal = %s, sum of month totals = %s", applyTax, got, year)
		}
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		amount string
		want   Classification
	}{
		{"1", Gain},
		{"0.0001", Gain},
		{"-1", Loss},
		{"0", Neutral},
	}
	for _, tc := range testCases {
		if got := Classify(decimal.RequireFromString(tc.amount)); got != tc.want {
			t.Errorf("Classify(%s) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}
