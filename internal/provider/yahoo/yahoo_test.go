package yahoo

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_CanceledContextShortCircuits(t *testing.T) {
	s := New(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The underlying API carries no context, so cancellation must be
	// honored before any network call happens.
	_, err := s.Fetch(ctx, "AAPL")

	require.ErrorIs(t, err, context.Canceled)
}

func TestName(t *testing.T) {
	assert.Equal(t, "yahoo", New(zerolog.Nop()).Name())
}
