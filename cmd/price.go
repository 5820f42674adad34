package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/yfin"
	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "fetch the current price of a symbol" }
func (*priceCmd) Usage() string {
	return `tdc price <symbol>

  Fetches the price of a symbol, cached for the configured TTL. The
  result is labeled "live", "today's close" or "previous close"
  depending on freshness. A fetch failure prints no price rather than
  a stale or wrong one.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: price takes exactly one <symbol> argument")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ttl, err := cfg.QuoteTTL()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fetcher := yfin.NewPriceFetcher(yfin.NewClient(), ttl)
	price, normalized, asOf := fetcher.FetchPrice(ctx, f.Arg(0))
	if price == nil {
		fmt.Printf("%s: no price available\n", f.Arg(0))
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s: %.2f (%s), step size %g\n", normalized, *price, asOf, yfin.InferStepSize(*price))
	return subcommands.ExitSuccess
}
