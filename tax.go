package tradecal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the Japanese capital-gains rate (15.315% income tax
// including the special reconstruction surtax, plus 5% local tax). It
// is a configuration default, not a constant of the model.
var DefaultTaxRate = decimal.RequireFromString("0.20315")

// TaxConfig holds the capital-gains rate applied to positive profits.
type TaxConfig struct {
	Rate decimal.Decimal
}

// NewTaxConfig validates the rate and returns a config. Rates outside
// [0,1] are rejected with a ConfigError.
func NewTaxConfig(rate decimal.Decimal) (TaxConfig, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return TaxConfig{}, &ConfigError{
			Setting: "tax rate",
			Reason:  fmt.Sprintf("must be within [0,1], got %s", rate),
		}
	}
	return TaxConfig{Rate: rate}, nil
}

// NewTaxConfigFromString parses a decimal rate string like "0.20315".
func NewTaxConfigFromString(rate string) (TaxConfig, error) {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return TaxConfig{}, &ConfigError{
			Setting: "tax rate",
			Reason:  fmt.Sprintf("not a number: %q", rate),
		}
	}
	return NewTaxConfig(r)
}

// DefaultTaxConfig returns a config at the default rate.
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{Rate: DefaultTaxRate}
}

// NetAfterTax reduces a positive amount by the configured rate. Losses
// and zero are returned unchanged: tax never deepens a loss.
func (c TaxConfig) NetAfterTax(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return amount
	}
	return amount.Sub(amount.Mul(c.Rate))
}
