package alphavantage

import "context"

// Overview is the company-overview response. All numeric fields arrive
// string-encoded; parsing happens at the aggregation boundary, not here.
type Overview struct {
	apiNote

	Symbol        string `json:"Symbol"`
	Name          string `json:"Name"`
	Description   string `json:"Description"`
	Industry      string `json:"Industry"`
	Sector        string `json:"Sector"`
	Website       string `json:"Website"`
	Exchange      string `json:"Exchange"`
	Currency      string `json:"Currency"`
	Country       string `json:"Country"`
	Address       string `json:"Address"`
	FiscalYearEnd string `json:"FiscalYearEnd"`
	LatestQuarter string `json:"LatestQuarter"`

	MarketCapitalization       string `json:"MarketCapitalization"`
	EBITDA                     string `json:"EBITDA"`
	PERatio                    string `json:"PERatio"`
	PEGRatio                   string `json:"PEGRatio"`
	BookValue                  string `json:"BookValue"`
	DividendPerShare           string `json:"DividendPerShare"`
	DividendYield              string `json:"DividendYield"`
	EPS                        string `json:"EPS"`
	RevenuePerShareTTM         string `json:"RevenuePerShareTTM"`
	ProfitMargin               string `json:"ProfitMargin"`
	OperatingMarginTTM         string `json:"OperatingMarginTTM"`
	ReturnOnAssetsTTM          string `json:"ReturnOnAssetsTTM"`
	ReturnOnEquityTTM          string `json:"ReturnOnEquityTTM"`
	RevenueTTM                 string `json:"RevenueTTM"`
	GrossProfitTTM             string `json:"GrossProfitTTM"`
	QuarterlyEarningsGrowthYOY string `json:"QuarterlyEarningsGrowthYOY"`
	QuarterlyRevenueGrowthYOY  string `json:"QuarterlyRevenueGrowthYOY"`
	AnalystTargetPrice         string `json:"AnalystTargetPrice"`
	AnalystRatingStrongBuy     string `json:"AnalystRatingStrongBuy"`
	AnalystRatingBuy           string `json:"AnalystRatingBuy"`
	AnalystRatingHold          string `json:"AnalystRatingHold"`
	AnalystRatingSell          string `json:"AnalystRatingSell"`
	AnalystRatingStrongSell    string `json:"AnalystRatingStrongSell"`
	TrailingPE                 string `json:"TrailingPE"`
	ForwardPE                  string `json:"ForwardPE"`
	PriceToSalesRatioTTM       string `json:"PriceToSalesRatioTTM"`
	PriceToBookRatio           string `json:"PriceToBookRatio"`
	EVToRevenue                string `json:"EVToRevenue"`
	EVToEBITDA                 string `json:"EVToEBITDA"`
	Beta                       string `json:"Beta"`
	FiftyTwoWeekHigh           string `json:"52WeekHigh"`
	FiftyTwoWeekLow            string `json:"52WeekLow"`
	FiftyDayMovingAverage      string `json:"50DayMovingAverage"`
	TwoHundredDayMovingAverage string `json:"200DayMovingAverage"`
	SharesOutstanding          string `json:"SharesOutstanding"`
	DividendDate               string `json:"DividendDate"`
	ExDividendDate             string `json:"ExDividendDate"`
}

// GetOverview retrieves the company overview for a symbol. An unknown
// symbol yields an empty (but non-error) response.
func (c *Client) GetOverview(ctx context.Context, symbol string) (*Overview, error) {
	var out Overview
	if err := c.get(ctx, "OVERVIEW", symbol, nil, &out); err != nil {
		return nil, err
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ETFProfile is the fund-profile response. For non-ETF (or unknown)
// symbols the provider returns an empty object.
type ETFProfile struct {
	apiNote

	NetAssets         string          `json:"net_assets"`
	NetExpenseRatio   string          `json:"net_expense_ratio"`
	PortfolioTurnover string          `json:"portfolio_turnover"`
	DividendYield     string          `json:"dividend_yield"`
	InceptionDate     string          `json:"inception_date"`
	Leveraged         string          `json:"leveraged"`
	Sectors           []SectorWeight  `json:"sectors"`
	Holdings          []HoldingWeight `json:"holdings"`
}

// SectorWeight is one row of the fund's sector breakdown.
type SectorWeight struct {
	Sector string `json:"sector"`
	Weight string `json:"weight"`
}

// HoldingWeight is one row of the fund's holdings list.
type HoldingWeight struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Weight      string `json:"weight"`
}

// GetETFProfile retrieves the fund profile for a symbol.
func (c *Client) GetETFProfile(ctx context.Context, symbol string) (*ETFProfile, error) {
	var out ETFProfile
	if err := c.get(ctx, "ETF_PROFILE", symbol, nil, &out); err != nil {
		return nil, err
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Earnings is the earnings-history response.
type Earnings struct {
	apiNote

	Symbol            string             `json:"symbol"`
	QuarterlyEarnings []QuarterlyEarning `json:"quarterlyEarnings"`
}

// QuarterlyEarning is one quarterly report, most recent first in the
// provider's delivery order.
type QuarterlyEarning struct {
	FiscalDateEnding string `json:"fiscalDateEnding"`
	ReportedEPS      string `json:"reportedEPS"`
	EstimatedEPS     string `json:"estimatedEPS"`
	ReportedRevenue  string `json:"reportedRevenue"`
	EstimatedRevenue string `json:"estimatedRevenue"`
}

// GetEarnings retrieves quarterly earnings history for a symbol.
func (c *Client) GetEarnings(ctx context.Context, symbol string) (*Earnings, error) {
	var out Earnings
	if err := c.get(ctx, "EARNINGS", symbol, nil, &out); err != nil {
		return nil, err
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return &out, nil
}
