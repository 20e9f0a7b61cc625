package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"stocktracker/internal/stock"
)

// Source is one provider strategy: it produces a complete lookup for a
// single symbol or fails. Implementations must be safe for concurrent use
// and hold no per-call state.
type Source interface {
	Name() string
	Fetch(ctx context.Context, symbol string) (*stock.Lookup, error)
}

// Chain tries sources in order and returns the first success. A not-found
// result stops the chain immediately: no later source can supply data for
// an unknown ticker, and retrying would only burn quota. Any other failure
// moves on to the next source. When every source failed the chain returns a
// *stock.AggregationError collecting the per-source failures.
type Chain struct {
	Sources []Source
	Log     zerolog.Logger
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) Fetch(ctx context.Context, symbol string) (*stock.Lookup, error) {
	symbol = stock.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", stock.ErrNotFound)
	}
	var attempts []stock.Attempt
	for _, s := range c.Sources {
		lookup, err := s.Fetch(ctx, symbol)
		if err == nil {
			return lookup, nil
		}
		if errors.Is(err, stock.ErrNotFound) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.Log.Warn().Str("source", s.Name()).Str("symbol", symbol).Err(err).Msg("source failed, trying next")
		attempts = append(attempts, stock.Attempt{Source: s.Name(), Err: err})
	}
	return nil, &stock.AggregationError{Symbol: symbol, Attempts: attempts}
}
