package tradecal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// this file contains the CSV import/export format. The export column
// order is fixed; the import tolerates locale variants of the header
// names so files exported by spreadsheets in Japanese round-trip.

// csvHeader is the fixed export column order.
var csvHeader = []string{"date", "symbol", "buy", "sell", "quantity", "profit"}

// headerAliases maps accepted header spellings to canonical columns.
var headerAliases = map[string]string{
	"date": "date", "日付": "date", "年月日": "date",
	"symbol": "symbol", "code": "symbol", "ticker": "symbol",
	"銘柄": "symbol", "銘柄コード": "symbol",
	"buy": "buy", "buyprice": "buy", "buy_price": "buy", "買値": "buy", "買い値": "buy",
	"sell": "sell", "sellprice": "sell", "sell_price": "sell", "売値": "sell", "売り値": "sell",
	"quantity": "quantity", "qty": "quantity", "shares": "quantity", "数量": "quantity", "株数": "quantity",
	"profit": "profit", "pl": "profit", "pnl": "profit", "損益": "profit", "収益": "profit",
}

// ImportCSV reads trade entries from a CSV stream. Unparsable rows are
// collected as ParseErrors and skipped; the import never aborts on a
// bad row. The final error is only for an unreadable stream or an
// unusable header.
func ImportCSV(r io.Reader) ([]TradeEntry, []ParseError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	// column index per canonical name, -1 when absent
	cols := map[string]int{"date": -1, "symbol": -1, "buy": -1, "sell": -1, "quantity": -1, "profit": -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		if name, ok := headerAliases[h]; ok && cols[name] < 0 {
			cols[name] = i
		}
	}
	if cols["date"] < 0 {
		return nil, nil, fmt.Errorf("CSV header has no recognizable date column: %q", header)
	}

	field := func(record []string, name string) string {
		i := cols[name]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var entries []TradeEntry
	var rowErrs []ParseError
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, ParseError{Row: row, Reason: err.Error()})
			continue
		}

		e, err := ParseTradeEntry(
			field(record, "date"),
			field(record, "symbol"),
			field(record, "buy"),
			field(record, "sell"),
			field(record, "quantity"),
		)
		if err != nil {
			rowErrs = append(rowErrs, ParseError{Row: row, Reason: err.Error()})
			continue
		}

		// An explicit profit value is preserved to keep files
		// round-tripping; an absent or empty column stays derived.
		if p := field(record, "profit"); p != "" {
			v, err := ParseAmount(p)
			if err != nil {
				rowErrs = append(rowErrs, ParseError{Row: row, Reason: fmt.Sprintf("profit %v", err)})
				continue
			}
			e.Profit = v
		}
		entries = append(entries, e)
	}
	return entries, rowErrs, nil
}

// ExportCSV writes the ledger in the fixed column order
// date,symbol,buy,sell,quantity,profit. Dates are day-level ISO.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, e := range l.Entries() {
		record := []string{
			e.Date.String(),
			e.Symbol,
			e.Buy.String(),
			e.Sell.String(),
			e.Quantity.String(),
			e.Profit.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
