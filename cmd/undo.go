package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal"
	"github.com/google/subcommands"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "revert the last saved mutation" }
func (*undoCmd) Usage() string {
	return `tdc undo

  Restores the ledger file from the backup kept before the last saved
  mutation. Running it again swaps back.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tradecal.SwapBackup(s.Path()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: nothing to undo: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Reverted %s to its previous state\n", s.Path())
	return subcommands.ExitSuccess
}
