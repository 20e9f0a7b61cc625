package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stocktracker/internal/aggregate"
	"stocktracker/internal/config"
	"stocktracker/internal/httpx"
	"stocktracker/internal/provider"
	"stocktracker/internal/provider/alphavantage"
	"stocktracker/internal/provider/cache"
	"stocktracker/internal/provider/polygon"
	"stocktracker/internal/provider/ratelimit"
	"stocktracker/internal/provider/twelvedata"
	"stocktracker/internal/provider/yahoo"
	"stocktracker/internal/search"
	"stocktracker/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration invalid")
	}
	if cfg.Polygon.Enabled && cfg.Polygon.APIKey == "" {
		log.Warn().Msg("polygon.enabled=true but POLYGON_API_KEY not set; news/related/enrichment disabled")
		cfg.Polygon.Enabled = false
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	avClient, err := alphavantage.NewClient(
		cfg.AlphaVantage.APIKey,
		alphavantage.WithHTTPClient(httpClient.HTTP),
		avBaseURL(cfg.AlphaVantage.BaseURL),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("alphavantage client")
	}
	tdClient := twelvedata.New(twelvedata.Config{
		APIKey:  cfg.TwelveData.APIKey,
		BaseURL: cfg.TwelveData.BaseURL,
	}, httpClient, log)

	var pgClient *polygon.Client
	var reference aggregate.ReferenceAPI
	if cfg.Polygon.Enabled {
		pgClient = polygon.New(polygon.Config{
			APIKey:  cfg.Polygon.APIKey,
			BaseURL: cfg.Polygon.BaseURL,
		}, httpClient, log)
		reference = pgClient
	}

	var primary provider.Source = aggregate.NewPrimary(tdClient, avClient, reference, log)
	// Gate the primary on the fundamentals provider's quota before falling
	// back; the fallback path costs nothing and should stay a last resort.
	if cfg.AlphaVantage.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.AlphaVantage.MaxRequestsPerMinute) / 60.0
		burst := cfg.AlphaVantage.Burst
		if burst <= 0 {
			burst = 1
		}
		primary = &ratelimit.TokenBucketSource{S: primary, TB: ratelimit.NewTokenBucket(rate, burst)}
	} else if cfg.AlphaVantage.MinRequestIntervalSec > 0 {
		interval := time.Duration(cfg.AlphaVantage.MinRequestIntervalSec) * time.Second
		primary = &ratelimit.MinInterval{S: primary, Interval: interval}
	}

	sources := []provider.Source{primary}
	if cfg.Fallback.Enabled {
		sources = append(sources, yahoo.New(log))
	}
	var chain provider.Source = &provider.Chain{Sources: sources, Log: log}
	if cfg.Cache.TTLSeconds > 0 {
		chain = &cache.Source{
			S:        chain,
			TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
			MaxItems: cfg.Cache.MaxItems,
		}
	}

	searcher := search.New(cfg.Search.Disabled, avClient, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newRouter(chain, searcher, pgClient, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func avBaseURL(base string) alphavantage.ClientOption {
	if base == "" {
		return func(*alphavantage.Client) {}
	}
	return alphavantage.WithBaseURL(base)
}
