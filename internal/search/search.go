// Package search provides ticker autocomplete. Search is auxiliary to the
// lookup flow: results are candidates for the user to pick from, so any
// provider failure degrades to an empty list rather than an error.
package search

import (
	"context"

	"github.com/rs/zerolog"

	"stocktracker/internal/provider/alphavantage"
	"stocktracker/internal/stock"
)

// minQueryLen is the shortest query worth sending to the provider.
const minQueryLen = 2

type Searcher interface {
	Search(ctx context.Context, query string) ([]stock.SearchResult, error)
}

// SymbolAPI is the provider surface the searcher needs.
type SymbolAPI interface {
	SearchSymbols(ctx context.Context, query string) (*alphavantage.SymbolSearch, error)
}

// Provider is the provider-backed searcher.
type Provider struct {
	api SymbolAPI
	log zerolog.Logger
}

func NewProvider(api SymbolAPI, log zerolog.Logger) *Provider {
	return &Provider{api: api, log: log.With().Str("component", "search").Logger()}
}

func (s *Provider) Search(ctx context.Context, query string) ([]stock.SearchResult, error) {
	query = stock.NormalizeSymbol(query)
	if len(query) < minQueryLen {
		return []stock.SearchResult{}, nil
	}
	resp, err := s.api.SearchSymbols(ctx, query)
	if err != nil {
		s.log.Warn().Str("query", query).Err(err).Msg("symbol search failed")
		return []stock.SearchResult{}, nil
	}
	out := make([]stock.SearchResult, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		out = append(out, stock.SearchResult{
			Symbol:   m.Symbol,
			Name:     m.Name,
			Type:     m.Type,
			Region:   m.Region,
			Currency: m.Currency,
		})
	}
	return out, nil
}

// Disabled is the administratively-disabled searcher used to conserve
// provider credits. It echoes the query back as a single synthetic
// candidate so the UI still lets the user submit an exact ticker.
type Disabled struct{}

func (Disabled) Search(_ context.Context, query string) ([]stock.SearchResult, error) {
	q := stock.NormalizeSymbol(query)
	if len(q) < minQueryLen {
		return []stock.SearchResult{}, nil
	}
	return []stock.SearchResult{{Symbol: q, Name: q}}, nil
}

// New picks the searcher for the configuration.
func New(disabled bool, api SymbolAPI, log zerolog.Logger) Searcher {
	if disabled {
		return Disabled{}
	}
	return NewProvider(api, log)
}
