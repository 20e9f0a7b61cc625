package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"stocktracker/internal/aggregate"
	"stocktracker/internal/config"
	"stocktracker/internal/httpx"
	"stocktracker/internal/provider"
	"stocktracker/internal/provider/alphavantage"
	"stocktracker/internal/provider/polygon"
	"stocktracker/internal/provider/twelvedata"
	"stocktracker/internal/provider/yahoo"
	"stocktracker/pkg/logger"
)

// lookup fetches one aggregated record and prints it as JSON, useful for
// poking at provider responses without running the server.
func main() {
	var symbol string
	var timeout int
	var configPath string
	var noFallback bool

	flag.StringVar(&symbol, "symbol", getenv("SYMBOL", "AAPL"), "ticker symbol to look up")
	flag.IntVar(&timeout, "timeout", 30, "request timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.BoolVar(&noFallback, "no-fallback", false, "disable the fallback provider")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: true})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration invalid")
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	avClient, err := alphavantage.NewClient(cfg.AlphaVantage.APIKey, alphavantage.WithHTTPClient(httpClient.HTTP))
	if err != nil {
		log.Fatal().Err(err).Msg("alphavantage client")
	}
	tdClient := twelvedata.New(twelvedata.Config{
		APIKey:  cfg.TwelveData.APIKey,
		BaseURL: cfg.TwelveData.BaseURL,
	}, httpClient, log)

	var reference aggregate.ReferenceAPI
	if cfg.Polygon.Enabled && cfg.Polygon.APIKey != "" {
		reference = polygon.New(polygon.Config{APIKey: cfg.Polygon.APIKey}, httpClient, log)
	}

	sources := []provider.Source{aggregate.NewPrimary(tdClient, avClient, reference, log)}
	if cfg.Fallback.Enabled && !noFallback {
		sources = append(sources, yahoo.New(log))
	}
	chain := &provider.Chain{Sources: sources, Log: log}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	lookup, err := chain.Fetch(ctx, symbol)
	if err != nil {
		log.Fatal().Str("symbol", symbol).Err(err).Msg("lookup failed")
	}

	b, _ := json.MarshalIndent(lookup, "", "  ")
	fmt.Println(string(b))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
