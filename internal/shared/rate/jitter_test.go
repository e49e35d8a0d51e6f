package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewJitter_ClampsLimit never builds a zero-rate limiter.
func TestNewJitter_ClampsLimit(t *testing.T) {
	jitter := NewJitter(t.Context(), 0)
	require.Equal(t, 1, jitter.Limit())
}

// TestJitter_Take_ReturnsPermit hands out a permit within a reasonable time.
func TestJitter_Take_ReturnsPermit(t *testing.T) {
	jitter := NewJitter(t.Context(), 100)

	done := make(chan bool)
	go func() { done <- jitter.Take(t.Context()) }()

	select {
	case ok := <-done:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Take should return a permit")
	}
}

// TestJitter_Take_Paces limits throughput to roughly the configured rate.
func TestJitter_Take_Paces(t *testing.T) {
	jitter := NewJitter(t.Context(), 50)

	start := time.Now()
	for i := 0; i < 20; i++ {
		require.True(t, jitter.Take(t.Context()))
	}
	// 20 permits at 50/s need ~400ms; allow for the prefilled burst slot.
	require.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)
}

// TestJitter_Take_CallerCancelled stops waiting when the caller gives up.
func TestJitter_Take_CallerCancelled(t *testing.T) {
	jitter := NewJitter(t.Context(), 1)
	require.True(t, jitter.Take(t.Context()))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.False(t, jitter.Take(ctx))
}

// TestJitter_Take_OwnerCancelled reports false after the provider stopped.
func TestJitter_Take_OwnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	jitter := NewJitter(ctx, 1000)
	cancel()

	require.Eventually(t, func() bool {
		return !jitter.Take(t.Context())
	}, time.Second, 5*time.Millisecond)
}
