package nativeindex

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// RateLimitConfig holds mirror throttling configuration for a platform.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each platform
// service. These stay well below the platforms' own write quotas so bulk
// imports never trip a platform-side throttle.
var DefaultRateLimits = map[domain.Platform]RateLimitConfig{
	domain.PlatformSpotlight:     {RequestsPerSecond: 50.0, BurstSize: 100}, // Core Spotlight batches cheaply
	domain.PlatformAppSearch:     {RequestsPerSecond: 20.0, BurstSize: 50},
	domain.PlatformWindowsSearch: {RequestsPerSecond: 10.0, BurstSize: 20}, // SearchIndexer is the slowest of the three
}

// Ensure Throttled implements the NativeIndex interface.
var _ driven.NativeIndex = (*Throttled)(nil)

// Throttled wraps a NativeIndex and paces calls with a token bucket so a
// bulk import cannot flood the platform service behind it.
type Throttled struct {
	inner   driven.NativeIndex
	limiter *rate.Limiter
}

// NewThrottled wraps inner with the default rate limit for its platform.
func NewThrottled(inner driven.NativeIndex) *Throttled {
	cfg, ok := DefaultRateLimits[inner.Platform()]
	if !ok {
		// Default fallback
		cfg = RateLimitConfig{RequestsPerSecond: 10.0, BurstSize: 20}
	}
	return NewThrottledWithConfig(inner, cfg)
}

// NewThrottledWithConfig wraps inner with a custom rate limit.
func NewThrottledWithConfig(inner driven.NativeIndex, cfg RateLimitConfig) *Throttled {
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Platform returns the wrapped index's platform.
func (t *Throttled) Platform() domain.Platform {
	return t.inner.Platform()
}

// Available reports whether the wrapped index is reachable.
func (t *Throttled) Available() bool {
	return t.inner.Available()
}

// Add waits for a token then forwards to the wrapped index.
func (t *Throttled) Add(ctx context.Context, item domain.SearchableItem) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.Add(ctx, item)
}

// Remove waits for a token then forwards to the wrapped index.
func (t *Throttled) Remove(ctx context.Context, id string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.Remove(ctx, id)
}

// RemoveDomain waits for a token then forwards to the wrapped index.
func (t *Throttled) RemoveDomain(ctx context.Context, domainName string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.RemoveDomain(ctx, domainName)
}

// Clear waits for a token then forwards to the wrapped index.
func (t *Throttled) Clear(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.inner.Clear(ctx)
}
