package alphavantage

import (
	"context"

	"stocktracker/internal/stock"
)

// Statement is the shared shape of the three financial-statement
// responses. Annual report rows decode straight into the domain row type:
// the provider's field names are the normalized names, and values stay
// string-encoded by contract.
type Statement struct {
	apiNote

	Symbol        string                     `json:"symbol"`
	AnnualReports []stock.FinancialStatement `json:"annualReports"`
}

// GetIncomeStatement retrieves annual income statements for a symbol.
func (c *Client) GetIncomeStatement(ctx context.Context, symbol string) (*Statement, error) {
	return c.getStatement(ctx, "INCOME_STATEMENT", symbol)
}

// GetBalanceSheet retrieves annual balance sheets for a symbol.
func (c *Client) GetBalanceSheet(ctx context.Context, symbol string) (*Statement, error) {
	return c.getStatement(ctx, "BALANCE_SHEET", symbol)
}

// GetCashFlow retrieves annual cash-flow statements for a symbol.
func (c *Client) GetCashFlow(ctx context.Context, symbol string) (*Statement, error) {
	return c.getStatement(ctx, "CASH_FLOW", symbol)
}

func (c *Client) getStatement(ctx context.Context, function, symbol string) (*Statement, error) {
	var out Statement
	if err := c.get(ctx, function, symbol, nil, &out); err != nil {
		return nil, err
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return &out, nil
}
