package metrics

import (
	"context"
	"time"

	"github.com/tepidprint/tepid/internal/cache"
	"github.com/tepidprint/tepid/internal/core"
)

// sessionCounter is the store query behind the active sessions gauge.
type sessionCounter interface {
	CountActiveSessions(ctx context.Context, now time.Time) (int64, error)
}

// CacheWrapper provides a read-through cache for gauge values, so that
// several instances sharing a cache do not all hit the database.
type CacheWrapper struct {
	store sessionCounter
	cache core.Cache[int64]
}

// NewCacheWrapper creates a new cache wrapper for metrics.
func NewCacheWrapper(store sessionCounter, c core.Cache[int64]) *CacheWrapper {
	return &CacheWrapper{
		store: store,
		cache: c,
	}
}

// GetActiveSessionsCount returns the number of unexpired sessions.
func (m *CacheWrapper) GetActiveSessionsCount(ctx context.Context, ttl time.Duration) (int64, error) {
	return cache.GetWithFetch(
		ctx,
		m.cache,
		"sessions:active",
		ttl,
		func(ctx context.Context, _ string) (int64, error) {
			return m.store.CountActiveSessions(ctx, time.Now())
		},
	)
}
