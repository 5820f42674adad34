package tradecal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeEntry is a single buy/sell trade logged on a calendar day.
//
// Profit is canonical: (Sell - Buy) * Quantity, recomputed by every
// entry-producing operation. The only path that can carry a foreign
// profit value is the CSV import, which preserves an explicit column
// so files round-trip.
type TradeEntry struct {
	ID       string          `json:"id"`
	Date     Date            `json:"date"`
	Symbol   string          `json:"symbol,omitempty"`
	Buy      decimal.Decimal `json:"buy"`
	Sell     decimal.Decimal `json:"sell"`
	Quantity decimal.Decimal `json:"quantity"`
	Profit   decimal.Decimal `json:"profit"`
}

// NewTradeEntry creates an entry with a fresh id and a derived profit.
func NewTradeEntry(on Date, symbol string, buy, sell, quantity decimal.Decimal) TradeEntry {
	e := TradeEntry{
		ID:       NewID(),
		Date:     on,
		Symbol:   symbol,
		Buy:      buy,
		Sell:     sell,
		Quantity: quantity,
	}
	e.Recompute()
	return e
}

// Recompute derives the profit from the buy, sell and quantity fields.
func (e *TradeEntry) Recompute() {
	e.Profit = e.Sell.Sub(e.Buy).Mul(e.Quantity)
}

// Validate checks that the numeric fields are non-negative and the date is set.
func (e TradeEntry) Validate() error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "missing"}
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"buy", e.Buy},
		{"sell", e.Sell},
		{"quantity", e.Quantity},
	} {
		if f.value.IsNegative() {
			return &ValidationError{Field: f.name, Reason: fmt.Sprintf("must not be negative, got %s", f.value)}
		}
	}
	return nil
}

// ParseTradeEntry builds an entry from raw user input strings. It
// returns a ValidationError for any field that does not parse or is
// negative.
func ParseTradeEntry(date, symbol, buy, sell, quantity string) (TradeEntry, error) {
	on, err := ParseDate(date)
	if err != nil {
		return TradeEntry{}, &ValidationError{Field: "date", Reason: err.Error()}
	}
	b, err := ParseAmount(buy)
	if err != nil {
		return TradeEntry{}, &ValidationError{Field: "buy", Reason: err.Error()}
	}
	s, err := ParseAmount(sell)
	if err != nil {
		return TradeEntry{}, &ValidationError{Field: "sell", Reason: err.Error()}
	}
	q, err := ParseAmount(quantity)
	if err != nil {
		return TradeEntry{}, &ValidationError{Field: "quantity", Reason: err.Error()}
	}
	e := NewTradeEntry(on, symbol, b, s, q)
	if err := e.Validate(); err != nil {
		return TradeEntry{}, err
	}
	return e, nil
}

// amountReplacer strips thousands separators and stray spaces, so
// locale-formatted values like "2,400" or "２４００"-adjacent exports
// with fullwidth commas still parse.
var amountReplacer = strings.NewReplacer(",", "", "，", "", " ", "", " ", "")

// ParseAmount parses a decimal after stripping thousands separators.
// An empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = amountReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
