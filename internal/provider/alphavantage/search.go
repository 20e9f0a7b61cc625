package alphavantage

import (
	"context"
	"net/url"
)

// SymbolSearch is the symbol-search response. The provider prefixes match
// field names with ordinals; the tags keep that idiosyncrasy out of
// everything above this package.
type SymbolSearch struct {
	apiNote

	BestMatches []BestMatch `json:"bestMatches"`
}

// BestMatch is one search candidate.
type BestMatch struct {
	Symbol   string `json:"1. symbol"`
	Name     string `json:"2. name"`
	Type     string `json:"3. type"`
	Region   string `json:"4. region"`
	Currency string `json:"8. currency"`
}

// SearchSymbols retrieves ticker candidates for a keyword query.
func (c *Client) SearchSymbols(ctx context.Context, query string) (*SymbolSearch, error) {
	var out SymbolSearch
	extra := url.Values{"keywords": []string{query}}
	if err := c.get(ctx, "SYMBOL_SEARCH", "", extra, &out); err != nil {
		return nil, err
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return &out, nil
}
