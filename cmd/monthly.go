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

type monthlyCmd struct {
	date string
	tax  bool
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a month as a calendar of day totals" }
func (*monthlyCmd) Usage() string {
	return `tdc monthly [-d <date>] [-tax]

  Displays the month containing <date> as a calendar table. Traded
  days show their net total; the month total follows.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any date inside the month (defaults to today)")
	f.BoolVar(&c.tax, "tax", false, "Show totals net of tax")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.MonthlyMarkdown(s.Ledger, on.Year(), on.Month(), tax, c.tax))
	return subcommands.ExitSuccess
}
