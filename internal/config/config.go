package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"stocktracker/internal/stock"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type AlphaVantage struct {
	APIKey                string `json:"api_key"`
	BaseURL               string `json:"base_url"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec"`
	Burst                 int    `json:"burst"`
}

type TwelveData struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

type Polygon struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

type Fallback struct {
	Enabled bool `json:"enabled"`
}

type Search struct {
	Disabled bool `json:"disabled"`
}

type Cache struct {
	TTLSeconds int `json:"ttl_sec"`
	MaxItems   int `json:"max_items"`
}

type Log struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type Config struct {
	Server       Server       `json:"server"`
	AlphaVantage AlphaVantage `json:"alphavantage"`
	TwelveData   TwelveData   `json:"twelvedata"`
	Polygon      Polygon      `json:"polygon"`
	Fallback     Fallback     `json:"fallback"`
	Search       Search       `json:"search"`
	Cache        Cache        `json:"cache"`
	Log          Log          `json:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 15},
		AlphaVantage: AlphaVantage{
			// The free tier tolerates 5 requests/minute; one equity lookup
			// issues up to 6 calls, so self-gating avoids tripping the Note.
			MaxRequestsPerMinute: 5,
			Burst:                6,
		},
		Polygon:  Polygon{Enabled: true},
		Fallback: Fallback{Enabled: true},
		Cache:    Cache{TTLSeconds: 60, MaxItems: 1000},
		Log:      Log{Level: "info", Pretty: true},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. A .env file (when present) and environment variables
// override select fields for secrecy.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Validate reports missing required provider credentials. The optional
// polygon key only disables its endpoints; the two primary keys are
// required for the service to do anything useful.
func (c Config) Validate() error {
	if c.AlphaVantage.APIKey == "" {
		return fmt.Errorf("alphavantage api key: %w", stock.ErrMissingCredentials)
	}
	if c.TwelveData.APIKey == "" {
		return fmt.Errorf("twelvedata api key: %w", stock.ErrMissingCredentials)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_MAX_RPM"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.AlphaVantage.MaxRequestsPerMinute = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_MIN_INTERVAL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.AlphaVantage.MinRequestIntervalSec = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_BURST"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.AlphaVantage.Burst = x
		}
	}
	if v := os.Getenv("TWELVE_DATA_API_KEY"); v != "" {
		cfg.TwelveData.APIKey = v
	}
	if v := os.Getenv("TWELVE_DATA_BASE_URL"); v != "" {
		cfg.TwelveData.BaseURL = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Polygon.APIKey = v
	}
	if v := os.Getenv("POLYGON_ENABLED"); v != "" {
		cfg.Polygon.Enabled = parseBool(v, cfg.Polygon.Enabled)
	}
	if v := os.Getenv("FALLBACK_ENABLED"); v != "" {
		cfg.Fallback.Enabled = parseBool(v, cfg.Fallback.Enabled)
	}
	if v := os.Getenv("DISABLE_SYMBOL_SEARCH"); v != "" {
		cfg.Search.Disabled = parseBool(v, cfg.Search.Disabled)
	}
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.Cache.TTLSeconds = x
		}
	}
	if v := os.Getenv("CACHE_MAX_ITEMS"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Cache.MaxItems = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		cfg.Log.Pretty = parseBool(v, cfg.Log.Pretty)
	}
}

func parseBool(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return def
}
