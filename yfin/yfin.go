// Package yfin fetches symbol search results and price quotes from a
// Yahoo-Finance compatible endpoint. Every call is best-effort and
// bounded by a timeout; callers are expected to degrade failures to
// empty results.
package yfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"
	defaultChartURL  = "https://query1.finance.yahoo.com/v8/finance/chart"

	callTimeout = 10 * time.Second
)

// Client talks to the remote quote service. The zero value is not
// usable; call NewClient.
type Client struct {
	SearchURL string
	ChartURL  string
	http      *http.Client
}

// NewClient returns a client against the public endpoints with a
// bounded call timeout.
func NewClient() *Client {
	return &Client{
		SearchURL: defaultSearchURL,
		ChartURL:  defaultChartURL,
		http:      &http.Client{Timeout: callTimeout},
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// the public endpoint rejects the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; tradecal)")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
