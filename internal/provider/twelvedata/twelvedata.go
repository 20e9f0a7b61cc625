package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"stocktracker/internal/httpx"
)

// Config configures the Twelve Data client.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client calls the Twelve Data quote and logo endpoints.
type Client struct {
	cfg    Config
	client *httpx.Client
	log    zerolog.Logger
}

func New(cfg Config, hc *httpx.Client, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.twelvedata.com"
	}
	return &Client{cfg: cfg, client: hc, log: log.With().Str("client", "twelvedata").Logger()}
}

// Quote is the quote-endpoint response. Numeric fields are string-encoded;
// status/code/message carry in-band errors.
type Quote struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Close         string `json:"close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
	Volume        string `json:"volume"`
	MarketCap     string `json:"market_cap"`

	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetQuote retrieves the latest quote for a symbol. In-band provider
// errors (status == "error") are returned as errors with the provider's
// message so the caller can surface it.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	var out Quote
	if err := c.get(ctx, "/quote", symbol, &out); err != nil {
		return nil, err
	}
	if out.Status == "error" {
		if out.Message != "" {
			return nil, fmt.Errorf("quote %s: %s", symbol, out.Message)
		}
		return nil, fmt.Errorf("quote %s: provider error code %d", symbol, out.Code)
	}
	return &out, nil
}

// Logo is the logo-endpoint response.
type Logo struct {
	Symbol string `json:"symbol"`
	URL    string `json:"url"`
}

// GetLogo retrieves the company logo URL for a symbol. A missing logo is
// an empty URL, not an error.
func (c *Client) GetLogo(ctx context.Context, symbol string) (*Logo, error) {
	var out Logo
	if err := c.get(ctx, "/logo", symbol, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, symbol string, out any) error {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", c.cfg.APIKey)
	u := c.cfg.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
