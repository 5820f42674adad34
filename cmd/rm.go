package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a logged trade" }
func (*rmCmd) Usage() string {
	return `tdc rm <id>

  Deletes the trade identified by <id> (a unique id prefix is accepted).
  Recoverable with 'tdc undo'.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm takes exactly one <id> argument")
		return subcommands.ExitUsageError
	}

	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Ledger.Delete(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Commit()

	fmt.Printf("Deleted %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
