package tradecal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Ledger amounts are plain decimals; yen formatting for display goes
// through go-money's currency metadata so grouping and fraction digits
// stay correct.

const ledgerCurrency = "JPY"

// currency returns the ledger currency metadata, never nil.
func currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, ledgerCurrency).Currency()
}

// FormatAmount renders an amount in the ledger currency, e.g. "¥10,000".
func FormatAmount(v decimal.Decimal) string {
	cur := currency()
	dec := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedAmount renders an amount with an explicit sign for gains.
// Zero is represented as "-".
func SignedAmount(v decimal.Decimal) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}
