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

type yearlyCmd struct {
	date string
	tax  bool
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display per-month totals for a year" }
func (*yearlyCmd) Usage() string {
	return `tdc yearly [-d <date>] [-tax]

  Displays the year containing <date> as a per-month summary with the
  year total.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any date inside the year (defaults to today)")
	f.BoolVar(&c.tax, "tax", false, "Show totals net of tax")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.YearlyMarkdown(s.Ledger, on.Year(), tax, c.tax))
	return subcommands.ExitSuccess
}
