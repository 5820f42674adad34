package yfin

import (
	"context"
	"fmt"
	"net/url"

	"github.com/etnz/tradecal/symbol"
)

// searchResult matches the structure of a single item in the search API
// response.
type searchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Exchange  string `json:"exchange"`
}

// Search queries the remote search endpoint and keeps equity-type
// instruments only. A non-success response is an error the caller is
// expected to degrade to an empty set.
func (c *Client) Search(ctx context.Context, query string) ([]symbol.Candidate, error) {
	addr := fmt.Sprintf("%s?q=%s&quotesCount=20&newsCount=0", c.SearchURL, url.QueryEscape(query))

	var payload struct {
		Quotes []searchResult `json:"quotes"`
	}
	if err := c.jwget(ctx, addr, &payload); err != nil {
		return nil, err
	}

	candidates := make([]symbol.Candidate, 0, len(payload.Quotes))
	for _, q := range payload.Quotes {
		if q.QuoteType != "EQUITY" {
			continue
		}
		name := q.ShortName
		if name == "" {
			name = q.LongName
		}
		candidates = append(candidates, symbol.Candidate{Symbol: q.Symbol, Name: name})
	}
	return candidates, nil
}
