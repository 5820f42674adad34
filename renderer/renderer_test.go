package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tradecal"
)

// fixtureLedger holds two trades in July 2025 and one in August.
func fixtureLedger(t *testing.T) *tradecal.Ledger {
	t.Helper()
	l := tradecal.NewLedger()
	for _, args := range [][]string{
		{"2025-07-01", "7203.T", "2300", "2400", "100"}, // +10,000
		{"2025-07-15", "9984.T", "9000", "8800", "10"},  // -2,000
		{"2025-08-04", "6758.T", "13000", "13500", "5"}, // +2,500
	} {
		e, err := tradecal.ParseTradeEntry(args[0], args[1], args[2], args[3], args[4])
		if err != nil {
			t.Fatalf("ParseTradeEntry(%v): %v", args, err)
		}
		if err := l.Add(e); err != nil {
			t.Fatalf("Add(%v): %v", args, err)
		}
	}
	return l
}

func TestDailyMarkdown(t *testing.T) {
	l := fixtureLedger(t)
	got := DailyMarkdown(l, tradecal.MustParseDate("2025-07-01"), tradecal.DefaultTaxConfig(), false)

	for _, want := range []string{
		"# Trades on 2025-07-01",
		"| 7203.T |",
		"+¥10,000",
		"**Total**: +¥10,000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("daily report missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "9984.T") {
		t.Errorf("daily report leaked another day's trade:\n%s", got)
	}
}

func TestDailyMarkdownEmptyDay(t *testing.T) {
	l := fixtureLedger(t)
	got := DailyMarkdown(l, tradecal.MustParseDate("2025-07-02"), tradecal.DefaultTaxConfig(), false)
	if !strings.Contains(got, "No trades.") {
		t.Errorf("want empty-day notice, got:\n%s", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	l := fixtureLedger(t)
	got := MonthlyMarkdown(l, 2025, time.July, tradecal.DefaultTaxConfig(), false)

	for _, want := range []string{
		"# July 2025",
		"| Sun | Mon | Tue | Wed | Thu | Fri | Sat |",
		"**1**<br>+¥10,000",
		"**15**<br>-¥2,000",
		"**Month total**: +¥8,000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("monthly report missing %q in:\n%s", want, got)
		}
	}
	// a quiet day renders as a bare day number
	if strings.Contains(got, "**2**") {
		t.Errorf("day without trades should not be marked:\n%s", got)
	}
}

func TestMonthlyMarkdownCalendarShape(t *testing.T) {
	l := tradecal.NewLedger()
	got := MonthlyMarkdown(l, 2025, time.July, tradecal.DefaultTaxConfig(), false)

	// July 2025 starts on a Tuesday and spans five calendar weeks.
	weeks := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "|") && !strings.Contains(line, "Sun") && !strings.Contains(line, "---") {
			weeks++
			if n := strings.Count(line, "|"); n != 8 {
				t.Errorf("calendar row has %d separators, want 8: %q", n, line)
			}
		}
	}
	if weeks != 5 {
		t.Errorf("got %d calendar weeks, want 5:\n%s", weeks, got)
	}
	if !strings.Contains(got, "| 1 |") {
		t.Errorf("missing plain day cell for the 1st:\n%s", got)
	}
}

func TestYearlyMarkdown(t *testing.T) {
	l := fixtureLedger(t)
	got := YearlyMarkdown(l, 2025, tradecal.DefaultTaxConfig(), false)

	for _, want := range []string{
		"# 2025",
		"| July | 2 | +¥8,000 | gain |",
		"| August | 1 | +¥2,500 | gain |",
		"| January | 0 | - | neutral |",
		"**Year total**: +¥10,500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("yearly report missing %q in:\n%s", want, got)
		}
	}
}

func TestYearlyMarkdownAfterTax(t *testing.T) {
	l := tradecal.NewLedger()
	e, err := tradecal.ParseTradeEntry("2025-03-03", "7203.T", "2000", "2392.2", "100")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Add(e); err != nil {
		t.Fatal(err)
	}
	// 39,220 gross, 20.315% tax leaves 31,252.457 which displays as 31,252.
	got := YearlyMarkdown(l, 2025, tradecal.DefaultTaxConfig(), true)
	if !strings.Contains(got, "# 2025 (after tax)") {
		t.Errorf("missing after-tax title suffix:\n%s", got)
	}
	if !strings.Contains(got, "+¥31,252") {
		t.Errorf("missing net-of-tax amount in:\n%s", got)
	}
}
