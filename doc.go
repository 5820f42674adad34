// Package tradecal provides the core types and functions for a trade
// calendar: a per-day log of buy/sell trades with aggregated,
// tax-adjusted profit and loss by day, month and year.
//
// The core functionalities include:
//   - Ledger Management: Recording trades as dated entries with a stable
//     identifier, with update, delete, duplicate and LIFO undo over full
//     ledger snapshots.
//   - Aggregation: Summing entry profits into day, month and year totals,
//     optionally net of a configured capital-gains tax rate.
//   - Data Persistence: Encoding and decoding the ledger to a single JSON
//     snapshot file, and importing/exporting trades as CSV.
//
// This package serves as the foundational logic for the `tdc` command-line
// tool. Symbol resolution and market data live in the symbol and yfin
// subpackages.
package tradecal
