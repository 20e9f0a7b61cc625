package stock

import "strings"

// Record is the unified, normalized result of looking up one ticker.
// It is built fresh on every lookup and never mutated afterwards.
//
// IsETF is the single discriminator: a full equity result carries
// Fundamentals and a nil ETFProfile, a full ETF result the reverse.
// A degraded fallback result carries neither (IsETF false), which is a
// valid state: the fallback provider supplies only quote and a minimal
// profile. Earnings is always non-nil and empty for ETFs.
type Record struct {
	Symbol        string        `json:"symbol"`
	Price         Float         `json:"price"`
	Change        Float         `json:"change"`
	ChangePercent Float         `json:"changePercent"`
	Volume        Int           `json:"volume"`
	MarketCap     Int           `json:"marketCap"`
	Logo          *string       `json:"logo"`
	IsETF         bool          `json:"isETF"`
	Profile       Profile       `json:"profile"`
	Fundamentals  *Fundamentals `json:"fundamentals,omitempty"`
	ETFProfile    *ETFProfile   `json:"etfProfile,omitempty"`
	Earnings      []Earning     `json:"earnings"`
}

// Profile holds the descriptive company fields. For ETFs and fallback
// results the equity-only fields are empty strings, never null, so
// presentation code does not have to branch on missing keys.
type Profile struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Industry      string `json:"industry"`
	Sector        string `json:"sector"`
	Website       string `json:"website"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Country       string `json:"country"`
	Address       string `json:"address"`
	FiscalYearEnd string `json:"fiscalYearEnd"`
	LatestQuarter string `json:"latestQuarter"`
}

// Fundamentals holds the equity ratio/metric set. Every numeric field the
// provider could not supply, or supplied as an unparseable string, is the
// null value of its type.
type Fundamentals struct {
	MarketCap                  Int           `json:"marketCap"`
	EBITDA                     Int           `json:"ebitda"`
	PERatio                    Float         `json:"peRatio"`
	PEGRatio                   Float         `json:"pegRatio"`
	BookValue                  Float         `json:"bookValue"`
	DividendPerShare           Float         `json:"dividendPerShare"`
	DividendYield              Float         `json:"dividendYield"`
	EPS                        Float         `json:"eps"`
	RevenuePerShare            Float         `json:"revenuePerShare"`
	ProfitMargin               Float         `json:"profitMargin"`
	OperatingMargin            Float         `json:"operatingMargin"`
	ReturnOnAssets             Float         `json:"returnOnAssets"`
	ReturnOnEquity             Float         `json:"returnOnEquity"`
	Revenue                    Int           `json:"revenue"`
	GrossProfit                Int           `json:"grossProfit"`
	QuarterlyEarningsGrowth    Float         `json:"quarterlyEarningsGrowth"`
	QuarterlyRevenueGrowth     Float         `json:"quarterlyRevenueGrowth"`
	AnalystTargetPrice         Float         `json:"analystTargetPrice"`
	AnalystRating              AnalystRating `json:"analystRating"`
	TrailingPE                 Float         `json:"trailingPE"`
	ForwardPE                  Float         `json:"forwardPE"`
	PriceToSalesRatio          Float         `json:"priceToSalesRatio"`
	PriceToBookRatio           Float         `json:"priceToBookRatio"`
	EVToRevenue                Float         `json:"evToRevenue"`
	EVToEBITDA                 Float         `json:"evToEBITDA"`
	Beta                       Float         `json:"beta"`
	FiftyTwoWeekHigh           Float         `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            Float         `json:"fiftyTwoWeekLow"`
	FiftyDayMovingAverage      Float         `json:"fiftyDayMovingAverage"`
	TwoHundredDayMovingAverage Float         `json:"twoHundredDayMovingAverage"`
	SharesOutstanding          Int           `json:"sharesOutstanding"`
	DividendDate               string        `json:"dividendDate"`
	ExDividendDate             string        `json:"exDividendDate"`
}

// AnalystRating holds analyst recommendation counts.
type AnalystRating struct {
	StrongBuy  Int `json:"strongBuy"`
	Buy        Int `json:"buy"`
	Hold       Int `json:"hold"`
	Sell       Int `json:"sell"`
	StrongSell Int `json:"strongSell"`
}

// ETFProfile describes a fund's identity and composition. Sectors and
// Holdings keep the provider's delivery order; weights stay the
// percent-encoded strings the provider sent.
type ETFProfile struct {
	Symbol         string     `json:"symbol"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Exchange       string     `json:"exchange"`
	AssetClass     string     `json:"assetClass"`
	AssetClassSize string     `json:"assetClassSize"`
	ExpenseRatio   string     `json:"expenseRatio"`
	AUM            string     `json:"aum"`
	Yield          string     `json:"yield"`
	YTDReturn      string     `json:"ytdReturn"`
	Beta3Year      string     `json:"beta3Year"`
	Sectors        []Weighted `json:"sectors"`
	Holdings       []Weighted `json:"holdings"`
}

// Weighted is one sector or holding row of an ETF composition.
type Weighted struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
}

// Earning is one quarterly earnings report.
type Earning struct {
	Date            string `json:"date"`
	EPS             Float  `json:"eps"`
	EPSEstimate     Float  `json:"epsEstimate"`
	Revenue         Float  `json:"revenue"`
	RevenueEstimate Float  `json:"revenueEstimate"`
}

// FinancialStatement is one fiscal-year row of an income statement,
// balance sheet, or cash-flow statement. Values stay string-encoded as
// delivered; some are absent per statement type, so consumers parse at
// the point of use.
type FinancialStatement struct {
	FiscalDateEnding       string `json:"fiscalDateEnding"`
	TotalRevenue           string `json:"totalRevenue,omitempty"`
	GrossProfit            string `json:"grossProfit,omitempty"`
	NetIncome              string `json:"netIncome,omitempty"`
	TotalAssets            string `json:"totalAssets,omitempty"`
	TotalLiabilities       string `json:"totalLiabilities,omitempty"`
	TotalShareholderEquity string `json:"totalShareholderEquity,omitempty"`
	OperatingCashflow      string `json:"operatingCashflow,omitempty"`
	CapitalExpenditures    string `json:"capitalExpenditures,omitempty"`
	DividendPayout         string `json:"dividendPayout,omitempty"`
}

// Lookup is the full result of one aggregation: the record plus the three
// annual financial-statement lists. The lists are empty, never nil, for
// ETFs and fallback results.
type Lookup struct {
	Stock           Record               `json:"stock"`
	IncomeStatement []FinancialStatement `json:"incomeStatement"`
	BalanceSheet    []FinancialStatement `json:"balanceSheet"`
	CashFlow        []FinancialStatement `json:"cashFlow"`
}

// SearchResult is one symbol-search candidate.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Region   string `json:"region"`
	Currency string `json:"currency"`
}

// NormalizeSymbol canonicalizes a ticker. Every provider call in one
// lookup uses the same normalized symbol so partial results cannot refer
// to different tickers.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
