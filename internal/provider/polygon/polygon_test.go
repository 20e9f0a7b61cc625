package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktracker/internal/httpx"
	"stocktracker/internal/stock"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: "test-key", BaseURL: srv.URL}, httpx.New(5*time.Second), zerolog.Nop())
}

func TestGetTickerReference(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/reference/tickers/AAPL", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{
			"status": "OK",
			"results": {
				"ticker": "AAPL",
				"name": "Apple Inc.",
				"description": "Apple is among the largest companies in the world.",
				"homepage_url": "https://www.apple.com"
			}
		}`))
	})

	ref, err := c.GetTickerReference(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", ref.Results.Name)
	assert.Equal(t, "Apple is among the largest companies in the world.", ref.Results.Description)
}

func TestGetTickerReference_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"NOT_FOUND"}`, http.StatusNotFound)
	})

	_, err := c.GetTickerReference(context.Background(), "ZZZZ")

	require.ErrorIs(t, err, stock.ErrNotFound)
}

func TestGetTickerReference_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := c.GetTickerReference(context.Background(), "AAPL")

	require.ErrorIs(t, err, stock.ErrRateLimited)
}

func TestGetNews(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/reference/news", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("ticker"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"title": "Apple announces results",
				"article_url": "https://news.example/apple",
				"published_utc": "2026-08-28T12:00:00Z",
				"tickers": ["AAPL"],
				"publisher": {"name": "Example News"}
			}]
		}`))
	})

	news, err := c.GetNews(context.Background(), "AAPL", 5)

	require.NoError(t, err)
	require.Len(t, news.Results, 1)
	assert.Equal(t, "Apple announces results", news.Results[0].Title)
	assert.Equal(t, "Example News", news.Results[0].Publisher.Name)
}

func TestGetNews_DefaultLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	news, err := c.GetNews(context.Background(), "AAPL", 0)

	require.NoError(t, err)
	assert.Empty(t, news.Results)
}

func TestGetRelatedCompanies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/related-companies/AAPL", r.URL.Path)
		w.Write([]byte(`{"status": "OK", "results": [{"ticker": "MSFT"}, {"ticker": "GOOGL"}]}`))
	})

	rel, err := c.GetRelatedCompanies(context.Background(), "AAPL")

	require.NoError(t, err)
	require.Len(t, rel.Results, 2)
	assert.Equal(t, "MSFT", rel.Results[0].Ticker)
}
