package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for a stock symbol" }
func (*searchCmd) Usage() string {
	return `tdc search <query>

  Resolves free-form input to exchange symbols. A bare 4-digit code
  gets the .T suffix; name matching folds katakana to hiragana.
  Sources: built-in catalog, cached master list, aliases, remote
  search, and your own trade history. Remote failures degrade to
  warnings; offline results are still shown.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: search takes a <query> argument")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	s, cfg, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	candidates, warnings := newResolver(s, cfg).Resolve(ctx, query)
	printMarkdown(renderer.CandidatesMarkdown(query, candidates))
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}
	return subcommands.ExitSuccess
}
