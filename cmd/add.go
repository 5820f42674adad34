package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/symbol"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	symbol   string
	buy      string
	sell     string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "log a trade" }
func (*addCmd) Usage() string {
	return `tdc add [-d <date>] [-s <symbol>] -buy <price> -sell <price> -qty <n>

  Logs a buy/sell trade on a calendar day. The profit is derived as
  (sell - buy) * qty. A bare 4-digit symbol gets the .T suffix.

Usage Examples:
$ tdc add -d 2025-07-01 -s 7203 -buy 2300 -sell 2400 -qty 100
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradecal.Today().String(), "Date of the trade (defaults to today)")
	f.StringVar(&c.symbol, "s", "", "Symbol of the traded security")
	f.StringVar(&c.buy, "buy", "", "Buy price")
	f.StringVar(&c.sell, "sell", "", "Sell price")
	f.StringVar(&c.quantity, "qty", "", "Quantity")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	e, err := tradecal.ParseTradeEntry(c.date, symbol.Canonicalize(c.symbol), c.buy, c.sell, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := s.Ledger.Add(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Commit()

	fmt.Printf("Added %s: %s on %s, profit %s\n", e.ID, e.Symbol, e.Date, tradecal.SignedAmount(e.Profit))
	return subcommands.ExitSuccess
}
