package yfin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		SearchURL: srv.URL + "/search",
		ChartURL:  srv.URL + "/chart",
		http:      srv.Client(),
	}
}

func TestSearch_FiltersToEquities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "トヨタ", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"quotes":[
			{"symbol":"7203.T","shortname":"Toyota Motor Corp","quoteType":"EQUITY"},
			{"symbol":"TM","longname":"Toyota Motor Corporation","quoteType":"EQUITY"},
			{"symbol":"7203=F","shortname":"Toyota Future","quoteType":"FUTURE"},
			{"symbol":"XYZ-USD","shortname":"Some Coin","quoteType":"CRYPTOCURRENCY"}
		]}`)
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "トヨタ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "7203.T", got[0].Symbol)
	assert.Equal(t, "Toyota Motor Corp", got[0].Name)
	assert.Equal(t, "Toyota Motor Corporation", got[1].Name, "longname used when shortname is empty")
}

func TestSearch_NonSuccessDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "7203")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestQuote_PrefersIntraday(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chart/7203.T", r.URL.Path, "bare code must be normalized before the call")
		fmt.Fprint(w, `{"chart":{"result":[{
			"meta":{"regularMarketPrice":2512.5},
			"timestamp":[1700000000],
			"indicators":{"quote":[{"close":[2400.0]}]}
		}],"error":null}}`)
	}))
	defer srv.Close()

	q, err := testClient(srv).Quote(context.Background(), "7203")
	require.NoError(t, err)
	assert.Equal(t, "7203.T", q.Symbol)
	assert.Equal(t, 2512.5, q.Price)
	assert.Equal(t, AsOfLive, q.AsOf)
}

func TestQuote_FallsBackToDailyClose(t *testing.T) {
	testCases := []struct {
		name      string
		timestamp int64
		wantAsOf  string
	}{
		{"older close", time.Now().AddDate(0, 0, -3).Unix(), AsOfPreviousClose},
		{"today's close", time.Now().UTC().Unix(), AsOfTodaysClose},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"chart":{"result":[{
					"meta":{},
					"timestamp":[%d,%d,%d],
					"indicators":{"quote":[{"close":[2300.0,2400.0,null]}]}
				}],"error":null}}`, tc.timestamp-172800, tc.timestamp, tc.timestamp+86400)
			}))
			defer srv.Close()

			q, err := testClient(srv).Quote(context.Background(), "7203.T")
			require.NoError(t, err)
			assert.Equal(t, 2400.0, q.Price, "the most recent non-null close wins")
			assert.Equal(t, tc.wantAsOf, q.AsOf)
		})
	}
}

func TestQuote_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":{"code":"Not Found"}}}`)
	}))
	defer srv.Close()

	_, err := testClient(srv).Quote(context.Background(), "0000.T")
	assert.Error(t, err)
}

func TestFetchPrice_CachesPerRawInput(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":2512.5}}],"error":null}}`)
	}))
	defer srv.Close()

	f := NewPriceFetcher(testClient(srv), time.Minute)
	for i := 0; i < 3; i++ {
		price, normalized, asOf := f.FetchPrice(context.Background(), "7203")
		require.NotNil(t, price)
		assert.Equal(t, 2512.5, *price)
		assert.Equal(t, "7203.T", normalized)
		assert.Equal(t, AsOfLive, asOf)
	}
	assert.Equal(t, int32(1), hits.Load(), "repeated calls within the TTL must be memoized")
}

func TestFetchPrice_FailureYieldsNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewPriceFetcher(testClient(srv), time.Minute)
	price, normalized, asOf := f.FetchPrice(context.Background(), "7203")
	assert.Nil(t, price)
	assert.Empty(t, normalized)
	assert.Empty(t, asOf)
}

func TestInferStepSize(t *testing.T) {
	testCases := []struct {
		price float64
		want  float64
	}{
		{0, 0.1},
		{999.9, 0.1},
		{1000, 1.0},
		{49999, 1.0},
		{50000, 100.0},
		{1000000, 100.0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, InferStepSize(tc.price), "price %v", tc.price)
	}
}
