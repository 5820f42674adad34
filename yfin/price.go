package yfin

import (
	"context"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultPriceTTL bounds how stale a memoized quote may be. Callers
// must not assume prices fresher than this window.
const DefaultPriceTTL = 5 * time.Minute

// PriceFetcher memoizes quotes per raw input text for a bounded time
// window. Any internal failure degrades to a null price; it never
// raises past this boundary.
type PriceFetcher struct {
	client *Client
	cache  *gocache.Cache
}

// NewPriceFetcher wraps the client with a TTL cache.
func NewPriceFetcher(client *Client, ttl time.Duration) *PriceFetcher {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	return &PriceFetcher{
		client: client,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

type cachedQuote struct {
	price      *float64
	normalized string
	asOf       string
}

// FetchPrice returns the current price for the raw symbol text, the
// normalized ticker it resolved to and a freshness label. On any
// failure it returns (nil, "", ""). Results are cached keyed by the raw
// input text, failures included, so a flapping endpoint is not hammered.
func (f *PriceFetcher) FetchPrice(ctx context.Context, raw string) (price *float64, normalized, asOfLabel string) {
	if v, ok := f.cache.Get(raw); ok {
		q := v.(cachedQuote)
		return q.price, q.normalized, q.asOf
	}

	q, err := f.client.Quote(ctx, raw)
	if err != nil {
		log.Printf("price fetch %q failed: %v", raw, err)
		f.cache.Set(raw, cachedQuote{}, gocache.DefaultExpiration)
		return nil, "", ""
	}

	p := q.Price
	f.cache.Set(raw, cachedQuote{price: &p, normalized: q.Symbol, asOf: q.AsOf}, gocache.DefaultExpiration)
	return &p, q.Symbol, q.AsOf
}

// InferStepSize suggests an input granularity for a price field. It is
// a UI heuristic, not a precision contract.
func InferStepSize(price float64) float64 {
	switch {
	case price < 1000:
		return 0.1
	case price < 50000:
		return 1.0
	default:
		return 100.0
	}
}
