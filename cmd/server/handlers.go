package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"stocktracker/internal/provider"
	"stocktracker/internal/provider/polygon"
	"stocktracker/internal/search"
	"stocktracker/internal/stock"
)

// lookupTimeout bounds one aggregation end to end. A new search from the
// browser supersedes a slow one; it does not cancel it, so the bound keeps
// abandoned fan-outs from pinning connections.
const lookupTimeout = 30 * time.Second

func newRouter(chain provider.Source, searcher search.Searcher, news *polygon.Client, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/stock/{symbol}", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
		defer cancel()
		symbol := chi.URLParam(r, "symbol")
		lookup, err := chain.Fetch(ctx, symbol)
		if err != nil {
			status, msg := lookupError(symbol, err)
			log.Warn().Str("symbol", symbol).Err(err).Msg("lookup failed")
			writeError(w, status, msg)
			return
		}
		writeJSON(w, http.StatusOK, lookup)
	})

	r.Get("/api/search", func(w http.ResponseWriter, r *http.Request) {
		results, err := searcher.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusBadGateway, "symbol search unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	})

	r.Get("/api/news/{symbol}", func(w http.ResponseWriter, r *http.Request) {
		if news == nil {
			writeError(w, http.StatusServiceUnavailable, "news provider not configured")
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		resp, err := news.GetNews(r.Context(), stock.NormalizeSymbol(chi.URLParam(r, "symbol")), limit)
		if err != nil {
			writeError(w, http.StatusBadGateway, "news unavailable")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	r.Get("/api/related/{symbol}", func(w http.ResponseWriter, r *http.Request) {
		if news == nil {
			writeError(w, http.StatusServiceUnavailable, "related-companies provider not configured")
			return
		}
		resp, err := news.GetRelatedCompanies(r.Context(), stock.NormalizeSymbol(chi.URLParam(r, "symbol")))
		if err != nil {
			writeError(w, http.StatusBadGateway, "related companies unavailable")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	return r
}

// lookupError maps the error taxonomy to a status and exactly one
// human-readable message. Rate-limit, not-found, and configuration
// failures call for different user actions, so they must stay
// distinguishable.
func lookupError(symbol string, err error) (int, string) {
	switch {
	case errors.Is(err, stock.ErrNotFound):
		return http.StatusNotFound, "no data found for " + stock.NormalizeSymbol(symbol)
	case errors.Is(err, stock.ErrRateLimited):
		return http.StatusTooManyRequests, "provider rate limit reached, try again later"
	case errors.Is(err, stock.ErrMissingCredentials):
		return http.StatusInternalServerError, "provider credentials not configured"
	default:
		var agg *stock.AggregationError
		if errors.As(err, &agg) {
			return http.StatusBadGateway, agg.Error()
		}
		return http.StatusBadGateway, "failed to fetch stock data, please try again"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
