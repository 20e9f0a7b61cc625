package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktracker/internal/stock"
)

type countingSource struct {
	calls  int
	lookup *stock.Lookup
	err    error
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Fetch(_ context.Context, _ string) (*stock.Lookup, error) {
	s.calls++
	return s.lookup, s.err
}

func TestFetch_CachesWithinTTL(t *testing.T) {
	inner := &countingSource{lookup: &stock.Lookup{Stock: stock.Record{Symbol: "AAPL"}}}
	c := &Source{S: inner, TTL: time.Minute}

	first, err := c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	second, err := c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Same(t, first, second)
}

func TestFetch_KeyIsNormalizedSymbol(t *testing.T) {
	inner := &countingSource{lookup: &stock.Lookup{Stock: stock.Record{Symbol: "AAPL"}}}
	c := &Source{S: inner, TTL: time.Minute}

	_, err := c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "  aapl ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
}

func TestFetch_ExpiredEntryRefetches(t *testing.T) {
	inner := &countingSource{lookup: &stock.Lookup{Stock: stock.Record{Symbol: "AAPL"}}}
	c := &Source{S: inner, TTL: time.Nanosecond}

	_, err := c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	inner := &countingSource{err: errors.New("upstream down")}
	c := &Source{S: inner, TTL: time.Minute}

	_, err := c.Fetch(context.Background(), "AAPL")
	require.Error(t, err)
	_, err = c.Fetch(context.Background(), "AAPL")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestFetch_ZeroTTLDisablesCaching(t *testing.T) {
	inner := &countingSource{lookup: &stock.Lookup{}}
	c := &Source{S: inner}

	_, err := c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestFetch_MaxItemsCapsMapSize(t *testing.T) {
	inner := &countingSource{lookup: &stock.Lookup{}}
	c := &Source{S: inner, TTL: time.Minute, MaxItems: 2}

	for _, sym := range []string{"AAPL", "MSFT", "GOOGL", "AMZN"} {
		_, err := c.Fetch(context.Background(), sym)
		require.NoError(t, err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.LessOrEqual(t, len(c.items), 2)
}
