package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
	tax  bool
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the trades and total of a single day" }
func (*dailyCmd) Usage() string {
	return `tdc daily [-d <date>] [-tax]

  Displays the trades of a single day and the day total, optionally
  net of capital gains tax.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
	f.BoolVar(&c.tax, "tax", false, "Show totals net of tax")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tax, err := cfg.Tax()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	on := tradecal.Today()
	if c.date != "" {
		if on, err = tradecal.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	printMarkdown(renderer.DailyMarkdown(s.Ledger, on, tax, c.tax))
	return subcommands.ExitSuccess
}
