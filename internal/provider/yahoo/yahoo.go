package yahoo

import (
	"context"
	"fmt"

	"github.com/piquette/finance-go/equity"
	"github.com/rs/zerolog"

	"stocktracker/internal/stock"
)

// Source is the fallback provider: Yahoo Finance via finance-go. It can
// supply a quote and a minimal profile but no fundamentals, statements, or
// earnings, and it cannot classify ETFs, so IsETF is always false on this
// path. The degraded record still satisfies every Record invariant.
type Source struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Source {
	return &Source{log: log.With().Str("client", "yahoo").Logger()}
}

func (s *Source) Name() string { return "yahoo" }

// Fetch builds a degraded lookup from a single Yahoo quote call. The
// finance-go API carries no context; cancellation is checked before the
// call since a superseded lookup's response is discarded by the caller
// anyway.
func (s *Source) Fetch(ctx context.Context, symbol string) (*stock.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || q.Symbol == "" {
		return nil, fmt.Errorf("%s: %w", symbol, stock.ErrNotFound)
	}

	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	if name == "" {
		name = symbol
	}

	rec := stock.Record{
		Symbol:        symbol,
		Price:         stock.FloatOf(q.RegularMarketPrice),
		Change:        stock.FloatOf(q.RegularMarketChange),
		ChangePercent: stock.FloatOf(q.RegularMarketChangePercent),
		Volume:        stock.IntOf(int64(q.RegularMarketVolume)),
		MarketCap:     stock.IntOf(q.MarketCap),
		Logo:          nil,
		IsETF:         false,
		Profile: stock.Profile{
			Name:     name,
			Exchange: q.FullExchangeName,
			Currency: q.CurrencyID,
		},
		Earnings: []stock.Earning{},
	}
	s.log.Debug().Str("symbol", symbol).Msg("served degraded record from fallback")
	return &stock.Lookup{
		Stock:           rec,
		IncomeStatement: []stock.FinancialStatement{},
		BalanceSheet:    []stock.FinancialStatement{},
		CashFlow:        []stock.FinancialStatement{},
	}, nil
}
