package aggregate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"stocktracker/internal/provider/alphavantage"
	"stocktracker/internal/provider/polygon"
	"stocktracker/internal/provider/twelvedata"
	"stocktracker/internal/stock"
)

// QuoteAPI is the quote+logo provider surface the aggregator needs.
type QuoteAPI interface {
	GetQuote(ctx context.Context, symbol string) (*twelvedata.Quote, error)
	GetLogo(ctx context.Context, symbol string) (*twelvedata.Logo, error)
}

// FundamentalsAPI is the fundamentals provider surface the aggregator needs.
type FundamentalsAPI interface {
	GetETFProfile(ctx context.Context, symbol string) (*alphavantage.ETFProfile, error)
	GetOverview(ctx context.Context, symbol string) (*alphavantage.Overview, error)
	GetEarnings(ctx context.Context, symbol string) (*alphavantage.Earnings, error)
	GetIncomeStatement(ctx context.Context, symbol string) (*alphavantage.Statement, error)
	GetBalanceSheet(ctx context.Context, symbol string) (*alphavantage.Statement, error)
	GetCashFlow(ctx context.Context, symbol string) (*alphavantage.Statement, error)
}

// ReferenceAPI is the optional description-enrichment surface.
type ReferenceAPI interface {
	GetTickerReference(ctx context.Context, symbol string) (*polygon.TickerReference, error)
}

// maxEarnings caps how many quarterly reports a record carries; the
// provider's delivery order (most recent first) is preserved.
const maxEarnings = 4

// Primary is the primary aggregation strategy. One Fetch reconciles the
// quote/logo provider and the fundamentals provider into a single lookup:
// quote, logo, and fund profile are requested concurrently; classification
// then gates the equity-only fan-out (overview, earnings, statements,
// description enrichment), since whether those calls are needed is unknown
// until the fund profile arrives.
type Primary struct {
	quotes       QuoteAPI
	fundamentals FundamentalsAPI
	reference    ReferenceAPI // may be nil
	log          zerolog.Logger
}

func NewPrimary(quotes QuoteAPI, fundamentals FundamentalsAPI, reference ReferenceAPI, log zerolog.Logger) *Primary {
	return &Primary{
		quotes:       quotes,
		fundamentals: fundamentals,
		reference:    reference,
		log:          log.With().Str("source", "primary").Logger(),
	}
}

func (p *Primary) Name() string { return "primary" }

// Fetch aggregates one symbol. Failures in independent optional fetches
// (logo, earnings, statements, enrichment) are absorbed as absent fields;
// failures in the quote, the fund profile, or the overview escalate so the
// chain can try the fallback source.
func (p *Primary) Fetch(ctx context.Context, symbol string) (*stock.Lookup, error) {
	symbol = stock.NormalizeSymbol(symbol)

	var (
		quote *twelvedata.Quote
		logo  *string
		etf   *alphavantage.ETFProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := p.quotes.GetQuote(gctx, symbol)
		if err != nil {
			return fmt.Errorf("quote: %w", err)
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		// Logo is cosmetic: a failed or empty response defaults to null.
		l, err := p.quotes.GetLogo(gctx, symbol)
		if err != nil {
			p.log.Debug().Str("symbol", symbol).Err(err).Msg("logo fetch failed")
			return nil
		}
		if l != nil && l.URL != "" {
			u := l.URL
			logo = &u
		}
		return nil
	})
	g.Go(func() error {
		e, err := p.fundamentals.GetETFProfile(gctx, symbol)
		if err != nil {
			return fmt.Errorf("etf profile: %w", err)
		}
		etf = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	isETF := Classify(etf)

	rec := stock.Record{
		Symbol:        symbol,
		Price:         stock.ParseFloat(quote.Close),
		Change:        stock.ParseFloat(quote.Change),
		ChangePercent: stock.ParseFloat(quote.PercentChange),
		Volume:        stock.ParseInt(quote.Volume),
		MarketCap:     stock.ParseInt(quote.MarketCap),
		Logo:          logo,
		IsETF:         isETF,
		Earnings:      []stock.Earning{},
	}
	lookup := &stock.Lookup{
		IncomeStatement: []stock.FinancialStatement{},
		BalanceSheet:    []stock.FinancialStatement{},
		CashFlow:        []stock.FinancialStatement{},
	}

	if isETF {
		rec.Profile = stock.Profile{Name: symbol}
		rec.ETFProfile = buildETFProfile(symbol, etf)
		lookup.Stock = rec
		return lookup, nil
	}

	var (
		overview *alphavantage.Overview
		earnings *alphavantage.Earnings
		income   *alphavantage.Statement
		balance  *alphavantage.Statement
		cashflow *alphavantage.Statement
		desc     string
	)
	g2, g2ctx := errgroup.WithContext(ctx)
	g2.Go(func() error {
		o, err := p.fundamentals.GetOverview(g2ctx, symbol)
		if err != nil {
			return fmt.Errorf("overview: %w", err)
		}
		overview = o
		return nil
	})
	g2.Go(func() error {
		e, err := p.fundamentals.GetEarnings(g2ctx, symbol)
		if err != nil {
			p.log.Debug().Str("symbol", symbol).Err(err).Msg("earnings fetch failed")
			return nil
		}
		earnings = e
		return nil
	})
	g2.Go(func() error {
		s, err := p.fundamentals.GetIncomeStatement(g2ctx, symbol)
		if err != nil {
			p.log.Debug().Str("symbol", symbol).Err(err).Msg("income statement fetch failed")
			return nil
		}
		income = s
		return nil
	})
	g2.Go(func() error {
		s, err := p.fundamentals.GetBalanceSheet(g2ctx, symbol)
		if err != nil {
			p.log.Debug().Str("symbol", symbol).Err(err).Msg("balance sheet fetch failed")
			return nil
		}
		balance = s
		return nil
	})
	g2.Go(func() error {
		s, err := p.fundamentals.GetCashFlow(g2ctx, symbol)
		if err != nil {
			p.log.Debug().Str("symbol", symbol).Err(err).Msg("cash flow fetch failed")
			return nil
		}
		cashflow = s
		return nil
	})
	if p.reference != nil {
		g2.Go(func() error {
			r, err := p.reference.GetTickerReference(g2ctx, symbol)
			if err != nil {
				p.log.Debug().Str("symbol", symbol).Err(err).Msg("reference enrichment failed")
				return nil
			}
			desc = r.Results.Description
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, err
	}

	// An equity with no recognizable name is no data, not a half record.
	if strings.TrimSpace(overview.Name) == "" {
		return nil, fmt.Errorf("%s: %w", symbol, stock.ErrNotFound)
	}

	rec.Profile = stock.Profile{
		Name:          overview.Name,
		Description:   overview.Description,
		Industry:      overview.Industry,
		Sector:        overview.Sector,
		Website:       overview.Website,
		Exchange:      overview.Exchange,
		Currency:      overview.Currency,
		Country:       overview.Country,
		Address:       overview.Address,
		FiscalYearEnd: overview.FiscalYearEnd,
		LatestQuarter: overview.LatestQuarter,
	}
	if desc != "" {
		rec.Profile.Description = desc
	}
	rec.Fundamentals = buildFundamentals(overview)
	rec.Earnings = buildEarnings(earnings)

	if income != nil {
		lookup.IncomeStatement = append(lookup.IncomeStatement, income.AnnualReports...)
	}
	if balance != nil {
		lookup.BalanceSheet = append(lookup.BalanceSheet, balance.AnnualReports...)
	}
	if cashflow != nil {
		lookup.CashFlow = append(lookup.CashFlow, cashflow.AnnualReports...)
	}
	lookup.Stock = rec
	return lookup, nil
}

func buildFundamentals(o *alphavantage.Overview) *stock.Fundamentals {
	return &stock.Fundamentals{
		MarketCap:                  stock.ParseInt(o.MarketCapitalization),
		EBITDA:                     stock.ParseInt(o.EBITDA),
		PERatio:                    stock.ParseFloat(o.PERatio),
		PEGRatio:                   stock.ParseFloat(o.PEGRatio),
		BookValue:                  stock.ParseFloat(o.BookValue),
		DividendPerShare:           stock.ParseFloat(o.DividendPerShare),
		DividendYield:              stock.ParseFloat(o.DividendYield),
		EPS:                        stock.ParseFloat(o.EPS),
		RevenuePerShare:            stock.ParseFloat(o.RevenuePerShareTTM),
		ProfitMargin:               stock.ParseFloat(o.ProfitMargin),
		OperatingMargin:            stock.ParseFloat(o.OperatingMarginTTM),
		ReturnOnAssets:             stock.ParseFloat(o.ReturnOnAssetsTTM),
		ReturnOnEquity:             stock.ParseFloat(o.ReturnOnEquityTTM),
		Revenue:                    stock.ParseInt(o.RevenueTTM),
		GrossProfit:                stock.ParseInt(o.GrossProfitTTM),
		QuarterlyEarningsGrowth:    stock.ParseFloat(o.QuarterlyEarningsGrowthYOY),
		QuarterlyRevenueGrowth:     stock.ParseFloat(o.QuarterlyRevenueGrowthYOY),
		AnalystTargetPrice:         stock.ParseFloat(o.AnalystTargetPrice),
		AnalystRating: stock.AnalystRating{
			StrongBuy:  stock.ParseInt(o.AnalystRatingStrongBuy),
			Buy:        stock.ParseInt(o.AnalystRatingBuy),
			Hold:       stock.ParseInt(o.AnalystRatingHold),
			Sell:       stock.ParseInt(o.AnalystRatingSell),
			StrongSell: stock.ParseInt(o.AnalystRatingStrongSell),
		},
		TrailingPE:                 stock.ParseFloat(o.TrailingPE),
		ForwardPE:                  stock.ParseFloat(o.ForwardPE),
		PriceToSalesRatio:          stock.ParseFloat(o.PriceToSalesRatioTTM),
		PriceToBookRatio:           stock.ParseFloat(o.PriceToBookRatio),
		EVToRevenue:                stock.ParseFloat(o.EVToRevenue),
		EVToEBITDA:                 stock.ParseFloat(o.EVToEBITDA),
		Beta:                       stock.ParseFloat(o.Beta),
		FiftyTwoWeekHigh:           stock.ParseFloat(o.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:            stock.ParseFloat(o.FiftyTwoWeekLow),
		FiftyDayMovingAverage:      stock.ParseFloat(o.FiftyDayMovingAverage),
		TwoHundredDayMovingAverage: stock.ParseFloat(o.TwoHundredDayMovingAverage),
		SharesOutstanding:          stock.ParseInt(o.SharesOutstanding),
		DividendDate:               o.DividendDate,
		ExDividendDate:             o.ExDividendDate,
	}
}

func buildETFProfile(symbol string, e *alphavantage.ETFProfile) *stock.ETFProfile {
	out := &stock.ETFProfile{
		Symbol:       symbol,
		Name:         symbol,
		ExpenseRatio: e.NetExpenseRatio,
		AUM:          e.NetAssets,
		Yield:        e.DividendYield,
		Sectors:      make([]stock.Weighted, 0, len(e.Sectors)),
		Holdings:     make([]stock.Weighted, 0, len(e.Holdings)),
	}
	for _, s := range e.Sectors {
		out.Sectors = append(out.Sectors, stock.Weighted{Name: s.Sector, Weight: s.Weight})
	}
	for _, h := range e.Holdings {
		out.Holdings = append(out.Holdings, stock.Weighted{Name: h.Description, Weight: h.Weight})
	}
	return out
}

func buildEarnings(e *alphavantage.Earnings) []stock.Earning {
	if e == nil {
		return []stock.Earning{}
	}
	n := len(e.QuarterlyEarnings)
	if n > maxEarnings {
		n = maxEarnings
	}
	out := make([]stock.Earning, 0, n)
	for _, q := range e.QuarterlyEarnings[:n] {
		out = append(out, stock.Earning{
			Date:            q.FiscalDateEnding,
			EPS:             stock.ParseFloat(q.ReportedEPS),
			EPSEstimate:     stock.ParseFloat(q.EstimatedEPS),
			Revenue:         stock.ParseFloat(q.ReportedRevenue),
			RevenueEstimate: stock.ParseFloat(q.EstimatedRevenue),
		})
	}
	return out
}
