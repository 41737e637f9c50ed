package nativeindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

func TestThrottled_ForwardsCalls(t *testing.T) {
	rec := NewRecorder(domain.PlatformSpotlight)
	throttled := NewThrottled(rec)
	ctx := context.Background()

	assert.Equal(t, domain.PlatformSpotlight, throttled.Platform())
	assert.True(t, throttled.Available())

	require.NoError(t, throttled.Add(ctx, domain.NewSearchableItem("a")))
	require.NoError(t, throttled.Remove(ctx, "a"))
	require.NoError(t, throttled.RemoveDomain(ctx, "work"))
	require.NoError(t, throttled.Clear(ctx))

	assert.Equal(t, []string{"a"}, rec.Added())
	assert.Equal(t, []string{"a"}, rec.Removed())
	assert.Equal(t, []string{"work"}, rec.RemovedDomains())
	assert.Equal(t, 1, rec.Clears())
}

func TestThrottled_UnknownPlatformGetsFallback(t *testing.T) {
	rec := NewRecorder(domain.PlatformUnknown)
	throttled := NewThrottled(rec)
	ctx := context.Background()

	// The fallback limit still lets normal traffic through
	for i := 0; i < 5; i++ {
		require.NoError(t, throttled.Add(ctx, domain.NewSearchableItem("a")))
	}
	assert.Len(t, rec.Added(), 5)
}

func TestThrottled_BurstWithinLimit(t *testing.T) {
	rec := NewRecorder(domain.PlatformSpotlight)
	throttled := NewThrottledWithConfig(rec, RateLimitConfig{
		RequestsPerSecond: 1000.0,
		BurstSize:         10,
	})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, throttled.Add(ctx, domain.NewSearchableItem("a")))
	}
	assert.Len(t, rec.Added(), 10)
}

func TestThrottled_CancelledContext(t *testing.T) {
	rec := NewRecorder(domain.PlatformSpotlight)
	throttled := NewThrottledWithConfig(rec, RateLimitConfig{
		RequestsPerSecond: 1.0,
		BurstSize:         1,
	})

	// Drain the single burst token
	require.NoError(t, throttled.Add(context.Background(), domain.NewSearchableItem("a")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := throttled.Add(ctx, domain.NewSearchableItem("b"))
	assert.Error(t, err)
	assert.Equal(t, []string{"a"}, rec.Added())
}

func TestDefaultRateLimits_CoverNativePlatforms(t *testing.T) {
	for _, platform := range []domain.Platform{
		domain.PlatformSpotlight,
		domain.PlatformAppSearch,
		domain.PlatformWindowsSearch,
	} {
		cfg, ok := DefaultRateLimits[platform]
		require.True(t, ok, "missing default for %s", platform)
		assert.Greater(t, cfg.RequestsPerSecond, 0.0)
		assert.Greater(t, cfg.BurstSize, 0)
	}
}
