package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/symbol"
	"github.com/etnz/tradecal/yfin"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "tdc.yaml"

// Config holds the app settings. Every field has a working default, so
// the tool runs with no config file at all.
type Config struct {
	// LedgerFile is the path of the ledger snapshot (JSON).
	LedgerFile string `yaml:"ledger_file"`
	// TaxRate is the capital gains tax rate, as a decimal string.
	TaxRate string `yaml:"tax_rate"`
	// MasterDir is the directory caching the exchange master list.
	MasterDir string `yaml:"master_dir"`
	// Mirrors are the master list download URLs, tried in order.
	Mirrors []string `yaml:"mirrors"`
	// PriceTTL caches quotes for that long, e.g. "5m".
	PriceTTL string `yaml:"price_ttl"`
}

func defaultConfig() Config {
	return Config{
		LedgerFile: "trades.json",
		TaxRate:    tradecal.DefaultTaxRate.String(),
		MasterDir:  ".master",
		Mirrors:    symbol.DefaultMirrors,
		PriceTTL:   yfin.DefaultPriceTTL.String(),
	}
}

// loadConfig reads the config file. A missing file yields the defaults;
// a present file overrides only the fields it sets.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", *configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", *configFile, err)
	}
	return cfg, nil
}

// Tax builds the tax model from the configured rate.
func (c Config) Tax() (tradecal.TaxConfig, error) {
	return tradecal.NewTaxConfigFromString(c.TaxRate)
}

// QuoteTTL parses the configured price cache duration.
func (c Config) QuoteTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.PriceTTL)
	if err != nil {
		return 0, &tradecal.ConfigError{Setting: "price_ttl", Reason: err.Error()}
	}
	return d, nil
}
