package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/symbol"
	"github.com/google/subcommands"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh the cached symbol master list" }
func (*refreshCmd) Usage() string {
	return `tdc refresh

  Downloads the exchange master list into the cache directory. Mirrors
  are tried in order; if all fail the existing cache stays untouched.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	m, err := symbol.RefreshMaster(ctx, cfg.MasterDir, cfg.Mirrors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Refreshed master list: %d symbols as of %s\n", len(m.Candidates), m.LastUpdated.Format("2006-01-02 15:04"))
	return subcommands.ExitSuccess
}
