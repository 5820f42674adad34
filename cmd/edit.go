package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/symbol"
	"github.com/google/subcommands"
)

type editCmd struct {
	date     string
	symbol   string
	buy      string
	sell     string
	quantity string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify a logged trade" }
func (*editCmd) Usage() string {
	return `tdc edit <id> [-d <date>] [-s <symbol>] [-buy <price>] [-sell <price>] [-qty <n>]

  Modifies the fields given by flags on the trade identified by <id>
  (a unique id prefix is accepted) and recomputes its profit.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "New date")
	f.StringVar(&c.symbol, "s", "", "New symbol")
	f.StringVar(&c.buy, "buy", "", "New buy price")
	f.StringVar(&c.sell, "sell", "", "New sell price")
	f.StringVar(&c.quantity, "qty", "", "New quantity")
}

// patch converts the set flags into a ledger patch.
func (c *editCmd) patch(f *flag.FlagSet) (tradecal.EntryPatch, error) {
	var p tradecal.EntryPatch
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "d":
			var on tradecal.Date
			if on, err = tradecal.ParseDate(c.date); err == nil {
				p.Date = &on
			}
		case "s":
			sym := symbol.Canonicalize(c.symbol)
			p.Symbol = &sym
		case "buy":
			if v, e := tradecal.ParseAmount(c.buy); e != nil {
				err = e
			} else {
				p.Buy = &v
			}
		case "sell":
			if v, e := tradecal.ParseAmount(c.sell); e != nil {
				err = e
			} else {
				p.Sell = &v
			}
		case "qty":
			if v, e := tradecal.ParseAmount(c.quantity); e != nil {
				err = e
			} else {
				p.Quantity = &v
			}
		}
	})
	return p, err
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit takes exactly one <id> argument")
		return subcommands.ExitUsageError
	}
	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	e, err := s.Ledger.Update(f.Arg(0), patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Commit()

	fmt.Printf("Updated %s: %s on %s, profit %s\n", e.ID, e.Symbol, e.Date, tradecal.SignedAmount(e.Profit))
	return subcommands.ExitSuccess
}
