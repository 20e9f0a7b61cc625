package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"stocktracker/internal/httpx"
	"stocktracker/internal/stock"
)

// Config configures the Polygon client.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client calls the Polygon reference endpoints: ticker details (used to
// enrich profile descriptions), news, and related companies.
type Client struct {
	cfg    Config
	client *httpx.Client
	log    zerolog.Logger
}

func New(cfg Config, hc *httpx.Client, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.polygon.io"
	}
	return &Client{cfg: cfg, client: hc, log: log.With().Str("client", "polygon").Logger()}
}

// TickerReference is the ticker-details response.
type TickerReference struct {
	Status  string `json:"status"`
	Results struct {
		Ticker      string `json:"ticker"`
		Name        string `json:"name"`
		Description string `json:"description"`
		HomepageURL string `json:"homepage_url"`
	} `json:"results"`
}

// GetTickerReference retrieves reference details for a symbol.
func (c *Client) GetTickerReference(ctx context.Context, symbol string) (*TickerReference, error) {
	var out TickerReference
	if err := c.get(ctx, "/v3/reference/tickers/"+url.PathEscape(symbol), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewsResponse is the ticker-news response.
type NewsResponse struct {
	Status  string        `json:"status"`
	Results []NewsArticle `json:"results"`
}

// NewsArticle is one news item, shaped for the dashboard's news card.
type NewsArticle struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ArticleURL   string   `json:"article_url"`
	PublishedUTC string   `json:"published_utc"`
	ImageURL     string   `json:"image_url"`
	Tickers      []string `json:"tickers"`
	Publisher    struct {
		Name        string `json:"name"`
		HomepageURL string `json:"homepage_url"`
		LogoURL     string `json:"logo_url"`
	} `json:"publisher"`
}

// GetNews retrieves recent news articles for a symbol.
func (c *Client) GetNews(ctx context.Context, symbol string, limit int) (*NewsResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{"ticker": []string{symbol}, "limit": []string{strconv.Itoa(limit)}}
	var out NewsResponse
	if err := c.get(ctx, "/v2/reference/news", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RelatedResponse is the related-companies response.
type RelatedResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Ticker string `json:"ticker"`
	} `json:"results"`
}

// GetRelatedCompanies retrieves tickers related to a symbol.
func (c *Client) GetRelatedCompanies(ctx context.Context, symbol string) (*RelatedResponse, error) {
	var out RelatedResponse
	if err := c.get(ctx, "/v1/related-companies/"+url.PathEscape(symbol), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("apiKey", c.cfg.APIKey)
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
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return stock.ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, stock.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
