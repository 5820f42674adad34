package yfin

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/symbol"
)

// Labels for how fresh a quote is.
const (
	AsOfLive          = "live"
	AsOfTodaysClose   = "today's close"
	AsOfPreviousClose = "previous close"
)

// Quote is a price observation for a normalized symbol.
type Quote struct {
	Symbol string
	Price  float64
	AsOf   string
}

// Quote fetches the current price for a symbol. Bare 4-digit codes are
// normalized to the exchange ticker first. It prefers the intraday
// quote field and falls back to the most recent daily close, labelling
// the result accordingly.
func (c *Client) Quote(ctx context.Context, symbolText string) (Quote, error) {
	ticker := symbol.Canonicalize(symbolText)
	if ticker == "" {
		return Quote{}, fmt.Errorf("empty symbol")
	}
	addr := fmt.Sprintf("%s/%s?interval=1d&range=5d", c.ChartURL, url.PathEscape(ticker))

	var jobj any
	if err := c.jwget(ctx, addr, &jobj); err != nil {
		return Quote{}, err
	}

	// because jsonpath is never clear about whether it returns a list of
	// one answer or a single answer, pluck keeps the first one if any.
	pluck := func(path string) (any, bool) {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return nil, false
		}
		if jlist, ok := jval.([]any); ok {
			if len(jlist) == 0 {
				return nil, false
			}
			jval = jlist[0]
		}
		return jval, jval != nil
	}

	// intraday quote first
	if jval, ok := pluck("$.chart.result[0].meta.regularMarketPrice"); ok {
		if price, ok := jval.(float64); ok && price > 0 {
			return Quote{Symbol: ticker, Price: price, AsOf: AsOfLive}, nil
		}
	}

	// otherwise the most recent daily close
	closesVal, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("no price data for %q: %w", ticker, err)
	}
	closes, _ := closesVal.([]any)
	timesVal, _ := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	times, _ := timesVal.([]any)

	for i := len(closes) - 1; i >= 0; i-- {
		price, ok := closes[i].(float64)
		if !ok || price <= 0 {
			continue
		}
		asOf := AsOfPreviousClose
		if i < len(times) {
			if ts, ok := times[i].(float64); ok {
				y, m, d := time.Unix(int64(ts), 0).UTC().Date()
				if tradecal.NewDate(y, m, d) == tradecal.Today() {
					asOf = AsOfTodaysClose
				}
			}
		}
		return Quote{Symbol: ticker, Price: price, AsOf: asOf}, nil
	}
	return Quote{}, fmt.Errorf("no price data for %q", ticker)
}
