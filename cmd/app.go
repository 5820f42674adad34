// Package cmd implements the CLI application to manage a trade calendar.
package cmd

import (
	"flag"
	"slices"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/symbol"
	"github.com/etnz/tradecal/yfin"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")
	c.Register(&dupCmd{}, "ledger")
	c.Register(&undoCmd{}, "ledger")
	c.Register(&logCmd{}, "ledger")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&searchCmd{}, "symbols")
	c.Register(&priceCmd{}, "symbols")
	c.Register(&refreshCmd{}, "symbols")

	c.Register(&topicCmd{}, "")
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger snapshot file (JSON), overrides the config")
var configFile = flag.String("config", defaultConfigFile, "Path to the config file (YAML)")

// openSession loads the app config and opens the ledger session it
// points to. A missing snapshot file simply starts empty.
func openSession() (*tradecal.Session, Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	path := cfg.LedgerFile
	if *ledgerFile != "" {
		path = *ledgerFile
	}
	return tradecal.OpenSession(path), cfg, nil
}

// newResolver assembles all symbol sources: embedded catalog, cached
// master list, nickname aliases, remote search, and the session's own
// trade history.
func newResolver(s *tradecal.Session, cfg Config) *symbol.Resolver {
	master, err := symbol.LoadMaster(cfg.MasterDir)
	if err != nil {
		// resolver works offline-degraded without the cache
		master = nil
	}
	return &symbol.Resolver{
		Catalog: symbol.Catalog(),
		Master:  master,
		Aliases: symbol.Aliases,
		Search:  yfin.NewClient().Search,
		History: func() []string { return slices.Collect(s.Ledger.UsedSymbols()) },
	}
}
