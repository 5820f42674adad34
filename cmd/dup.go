package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal"
	"github.com/google/subcommands"
)

type dupCmd struct {
	date string
}

func (*dupCmd) Name() string     { return "dup" }
func (*dupCmd) Synopsis() string { return "duplicate a logged trade" }
func (*dupCmd) Usage() string {
	return `tdc dup <id> [-d <date>]

  Duplicates the trade identified by <id> under a fresh id, optionally
  moving the copy to another date.
`
}

func (c *dupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the copy (defaults to the original's date)")
}

func (c *dupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: dup takes exactly one <id> argument")
		return subcommands.ExitUsageError
	}

	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	e, err := s.Ledger.Duplicate(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.date != "" {
		on, err := tradecal.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if e, err = s.Ledger.Update(e.ID, tradecal.EntryPatch{Date: &on}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	s.Commit()

	fmt.Printf("Duplicated as %s: %s on %s\n", e.ID, e.Symbol, e.Date)
	return subcommands.ExitSuccess
}
