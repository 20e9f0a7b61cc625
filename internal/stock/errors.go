package stock

import (
	"errors"
	"fmt"
	"strings"
)

// The error classes a failed lookup can surface. Each one calls for a
// different user action, so callers branch with errors.Is and present a
// distinct message.
var (
	// ErrMissingCredentials means a required provider API key is not
	// configured. Fatal, no retry.
	ErrMissingCredentials = errors.New("provider credentials not configured")

	// ErrRateLimited means a provider signalled quota exhaustion. The
	// aggregation chain reacts by trying the fallback source; the error only
	// reaches the caller when the fallback failed too.
	ErrRateLimited = errors.New("provider rate limit reached")

	// ErrNotFound means no provider knows the symbol. Surfaced directly:
	// falling back cannot conjure data for an unknown ticker.
	ErrNotFound = errors.New("no data found for ticker")
)

// Attempt records one failed source in an exhausted chain.
type Attempt struct {
	Source string
	Err    error
}

// AggregationError is returned when every source in the chain failed. It
// unwraps to each attempt's error so errors.Is still recognizes a
// rate-limited primary behind a dead fallback.
type AggregationError struct {
	Symbol   string
	Attempts []Attempt
}

func (e *AggregationError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Source, a.Err))
	}
	return fmt.Sprintf("all providers failed for %s: %s", e.Symbol, strings.Join(parts, "; "))
}

func (e *AggregationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}
