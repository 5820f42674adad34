package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/renderer"
	"github.com/etnz/tradecal/symbol"
	"github.com/google/subcommands"
)

type logCmd struct {
	date   string
	symbol string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list logged trades with their ids" }
func (*logCmd) Usage() string {
	return `tdc log [-d <date>] [-s <symbol>]

  Lists trades in insertion order. Filters narrow: with both flags a
  trade must be on the date and carry the symbol.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Only trades on this date")
	f.StringVar(&c.symbol, "s", "", "Only trades with this symbol")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var filters []func(tradecal.TradeEntry) bool
	if c.date != "" {
		on, err := tradecal.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, tradecal.OnDate(on))
	}
	if c.symbol != "" {
		want := symbol.Canonicalize(c.symbol)
		filters = append(filters, func(e tradecal.TradeEntry) bool {
			return strings.EqualFold(e.Symbol, want)
		})
	}

	printMarkdown(renderer.LogMarkdown(s.Ledger, filters...))
	return subcommands.ExitSuccess
}
