package twelvedata

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
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: "test-key", BaseURL: srv.URL}, httpx.New(5*time.Second), zerolog.Nop())
}

func TestGetQuote(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"symbol": "AAPL",
			"name": "Apple Inc",
			"exchange": "NASDAQ",
			"currency": "USD",
			"close": "150.00",
			"change": "1.50",
			"percent_change": "1.01",
			"volume": "52000000",
			"market_cap": "2500000000000"
		}`))
	})

	q, err := c.GetQuote(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "150.00", q.Close)
	assert.Equal(t, "1.01", q.PercentChange)
	assert.Equal(t, "2500000000000", q.MarketCap)
}

func TestGetQuote_InBandError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 404, "message": "symbol not found", "status": "error"}`))
	})

	_, err := c.GetQuote(context.Background(), "NOPE")

	require.Error(t, err)
	assert.ErrorContains(t, err, "symbol not found")
}

func TestGetQuote_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.GetQuote(context.Background(), "AAPL")

	require.Error(t, err)
	assert.ErrorContains(t, err, "502")
}

func TestGetLogo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logo", r.URL.Path)
		w.Write([]byte(`{"symbol": "AAPL", "url": "https://logo.example/aapl.png"}`))
	})

	l, err := c.GetLogo(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "https://logo.example/aapl.png", l.URL)
}

func TestGetLogo_MissingIsEmptyNotError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol": "ZZZZ", "url": ""}`))
	})

	l, err := c.GetLogo(context.Background(), "ZZZZ")

	require.NoError(t, err)
	assert.Empty(t, l.URL)
}
