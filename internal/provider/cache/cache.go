package cache

import (
	"context"
	"sync"
	"time"

	"stocktracker/internal/provider"
	"stocktracker/internal/stock"
)

// entry stores one cached lookup with expiry.
type entry struct {
	expiresAt time.Time
	lookup    *stock.Lookup
}

// Source caches lookups per symbol for a TTL. Lookups are immutable once
// returned, so cached pointers are shared safely across callers. The free
// fundamentals tier allows only a handful of requests per minute, which
// makes even a short TTL worthwhile for repeated searches of the same
// ticker.
type Source struct {
	S        provider.Source
	TTL      time.Duration
	MaxItems int

	mu    sync.RWMutex
	items map[string]entry // key: normalized symbol
}

func (c *Source) Name() string { return c.S.Name() }

// Fetch returns a cached lookup when valid, otherwise delegates and
// stores the result. Errors are never cached.
func (c *Source) Fetch(ctx context.Context, symbol string) (*stock.Lookup, error) {
	if c.S == nil || c.TTL <= 0 {
		return c.S.Fetch(ctx, symbol)
	}
	symbol = stock.NormalizeSymbol(symbol)

	now := time.Now()
	c.mu.RLock()
	e, ok := c.items[symbol]
	c.mu.RUnlock()
	if ok && now.Before(e.expiresAt) {
		return e.lookup, nil
	}

	lookup, err := c.S.Fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.items == nil {
		c.items = make(map[string]entry)
	}
	c.items[symbol] = entry{expiresAt: now.Add(c.TTL), lookup: lookup}
	if c.MaxItems > 0 && len(c.items) > c.MaxItems {
		// best-effort cap: drop expired entries first, then arbitrary keys
		for k, v := range c.items {
			if len(c.items) <= c.MaxItems {
				break
			}
			if time.Now().After(v.expiresAt) {
				delete(c.items, k)
			}
		}
		for k := range c.items {
			if len(c.items) <= c.MaxItems {
				break
			}
			delete(c.items, k)
		}
	}
	c.mu.Unlock()

	return lookup, nil
}
