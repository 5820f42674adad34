package tradecal

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestImportCSV_DerivesEmptyProfit(t *testing.T) {
	csv := "date,symbol,buy,sell,quantity,profit\n" +
		"2025-10-01,7203.T,2400,2500,100,\n"
	entries, rowErrs, err := ImportCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("row errors: %v", rowErrs)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if want := decimal.RequireFromString("10000"); !entries[0].Profit.Equal(want) {
		t.Errorf("derived profit = %s, want %s", entries[0].Profit, want)
	}
}

func TestImportCSV_HeaderAliases(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{"japanese headers", "日付,銘柄,買値,売値,数量,損益\n2025-10-01,7203.T,2400,2500,100,10000\n"},
		{"byte order mark before header", "\uFEFFdate,symbol,buy,sell,quantity,profit\n2025-10-01,7203.T,2400,2500,100,10000\n"},
		{"mixed aliases", "Date,Code,buy_price,sell_price,qty,PnL\n2025-10-01,7203.T,2400,2500,100,10000\n"},
		{"missing profit column", "date,symbol,buy,sell,quantity\n2025-10-01,7203.T,2400,2500,100\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, rowErrs, err := ImportCSV(strings.NewReader(tc.csv))
			if err != nil {
				t.Fatalf("ImportCSV: %v", err)
			}
			if len(rowErrs) != 0 {
				t.Fatalf("row errors: %v", rowErrs)
			}
			if len(entries) != 1 {
				t.Fatalf("entries = %d, want 1", len(entries))
			}
			e := entries[0]
			if e.Symbol != "7203.T" || e.Date.String() != "2025-10-01" {
				t.Errorf("parsed entry = %+v", e)
			}
			if want := decimal.RequireFromString("10000"); !e.Profit.Equal(want) {
				t.Errorf("profit = %s, want %s", e.Profit, want)
			}
		})
	}
}

func TestImportCSV_ThousandsSeparators(t *testing.T) {
	csv := "date,symbol,buy,sell,quantity,profit\n" +
		"2025-10-01,9984.T,\"9,000\",\"9,100\",\"1,000\",\n"
	entries, rowErrs, err := ImportCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("row errors: %v", rowErrs)
	}
	if want := decimal.RequireFromString("100000"); !entries[0].Profit.Equal(want) {
		t.Errorf("profit = %s, want %s", entries[0].Profit, want)
	}
}

func TestImportCSV_CollectsRowErrorsAndContinues(t *testing.T) {
	csv := "date,symbol,buy,sell,quantity,profit\n" +
		"2025-10-01,7203.T,2400,2500,100,10000\n" +
		"bogus,7203.T,2400,2500,100,\n" +
		"2025-10-02,7203.T,abc,2500,100,\n" +
		"2025-10-03,9984.T,9000,9100,10,\n"
	entries, rowErrs, err := ImportCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 (partial success)", len(entries))
	}
	if len(rowErrs) != 2 {
		t.Fatalf("row errors = %d, want 2: %v", len(rowErrs), rowErrs)
	}
	if rowErrs[0].Row != 2 || rowErrs[1].Row != 3 {
		t.Errorf("row error indexes = %d, %d, want 2, 3", rowErrs[0].Row, rowErrs[1].Row)
	}
}

func TestImportCSV_TruncatesLongDates(t *testing.T) {
	csv := "date,symbol,buy,sell,quantity,profit\n" +
		"2025-10-01T09:30:00+09:00,7203.T,2400,2500,100,\n"
	entries, rowErrs, err := ImportCSV(strings.NewReader(csv))
	if err != nil || len(rowErrs) != 0 || len(entries) != 1 {
		t.Fatalf("ImportCSV: %v %v %d", err, rowErrs, len(entries))
	}
	if got := entries[0].Date.String(); got != "2025-10-01" {
		t.Errorf("date = %s, want 2025-10-01", got)
	}
}

// tuple is the value identity of an entry for round-trip comparison.
func tuple(e TradeEntry) string {
	return strings.Join([]string{
		e.Date.String(), e.Symbol,
		e.Buy.String(), e.Sell.String(), e.Quantity.String(), e.Profit.String(),
	}, "|")
}

func TestCSV_RoundTrip(t *testing.T) {
	in := "date,symbol,buy,sell,quantity,profit\n" +
		"2025-10-01,7203.T,2400,2500,100,10000\n" +
		"2025-10-01,7203.T,2400,2500,100,10000\n" + // identical row must survive as a duplicate
		"2025-10-02,9984.T,9100,9000,10,-1000\n" +
		"2025-10-03,,1000,1200,5,999\n" // explicit profit differing from the derived value

	entries, rowErrs, err := ImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("row errors: %v", rowErrs)
	}
	l := NewLedger()
	for _, e := range entries {
		l.entries = append(l.entries, e) // bypass Add: import preserves explicit profit
	}

	var out strings.Builder
	if err := ExportCSV(&out, l); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	reimported, rowErrs, err := ImportCSV(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("re-import row errors: %v", rowErrs)
	}

	want := make([]string, 0, len(entries))
	for _, e := range entries {
		want = append(want, tuple(e))
	}
	got := make([]string, 0, len(reimported))
	for _, e := range reimported {
		got = append(got, tuple(e))
	}
	sort.Strings(want)
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("round-trip multiset size = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("round-trip tuple %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestExportCSV_FixedHeader(t *testing.T) {
	var out strings.Builder
	if err := ExportCSV(&out, NewLedger()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "date,symbol,buy,sell,quantity,profit" {
		t.Errorf("header = %q", got)
	}
}
