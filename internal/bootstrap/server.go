package bootstrap

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/store"

	"github.com/appleboy/graceful"
	"github.com/redis/go-redis/v9"
)

// activeSessionCounter is implemented by session backends that can count
// live sessions for the gauge.
type activeSessionCounter interface {
	CountActiveSessions(ctx context.Context, now time.Time) (int64, error)
}

// createHTTPServer creates the HTTP server instance
func createHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// addServerRunningJob adds the HTTP server running job
func addServerRunningJob(m *graceful.Manager, srv *http.Server) {
	m.AddRunningJob(func(ctx context.Context) error {
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()
		<-ctx.Done()
		return nil
	})
}

// addServerShutdownJob adds HTTP server shutdown handler
func addServerShutdownJob(m *graceful.Manager, srv *http.Server, timeout time.Duration) {
	m.AddShutdownJob(func() error {
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
			return err
		}

		log.Println("Server exited")
		return nil
	})
}

// addSessionSweepJob periodically deletes expired sessions from backends
// that keep them until asked. Redis expires its own keys.
func addSessionSweepJob(m *graceful.Manager, cfg *config.Config, backend core.SessionBackend) {
	sweeper, ok := backend.(core.ExpiredSessionSweeper)
	if !ok || cfg.SessionSweepInterval <= 0 {
		return
	}

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.SessionSweepInterval)
		defer ticker.Stop()

		sweepExpiredSessions(ctx, sweeper)
		for {
			select {
			case <-ticker.C:
				sweepExpiredSessions(ctx, sweeper)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

func sweepExpiredSessions(ctx context.Context, sweeper core.ExpiredSessionSweeper) {
	deleted, err := sweeper.DeleteExpiredSessions(ctx, time.Now().UTC())
	switch {
	case err != nil:
		log.Printf("[Session] Failed to sweep expired sessions: %v", err)
	case deleted > 0:
		log.Printf("[Session] Swept %d expired session(s)", deleted)
	}
}

// addMetricsGaugeUpdateJob adds periodic metrics gauge update job
func addMetricsGaugeUpdateJob(
	m *graceful.Manager,
	cfg *config.Config,
	backend core.SessionBackend,
	recorder metrics.Recorder,
	metricsCache core.Cache[int64],
) {
	counter, ok := backend.(activeSessionCounter)
	if !cfg.MetricsEnabled || !ok || metricsCache == nil {
		return
	}

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.MetricsGaugeUpdateInterval)
		defer ticker.Stop()

		cacheWrapper := metrics.NewCacheWrapper(counter, metricsCache)

		updateGaugeMetricsWithCache(ctx, cacheWrapper, recorder, cfg.MetricsGaugeUpdateInterval)
		for {
			select {
			case <-ticker.C:
				updateGaugeMetricsWithCache(ctx, cacheWrapper, recorder, cfg.MetricsGaugeUpdateInterval)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

// addCacheCleanupJob closes a cache on shutdown
func addCacheCleanupJob(m *graceful.Manager, name string, closer func() error) {
	if closer == nil {
		return
	}

	m.AddShutdownJob(func() error {
		if err := closer(); err != nil {
			log.Printf("Error closing %s cache: %v", name, err)
		} else {
			log.Printf("%s cache closed", name)
		}
		return nil
	})
}

// addRedisClientShutdownJob adds Redis client shutdown handler
func addRedisClientShutdownJob(m *graceful.Manager, redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	m.AddShutdownJob(func() error {
		log.Println("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
			return err
		}
		log.Println("Redis connection closed")
		return nil
	})
}

// addDatabaseShutdownJob closes the database pool
func addDatabaseShutdownJob(m *graceful.Manager, db *store.Store) {
	m.AddShutdownJob(func() error {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
			return err
		}
		return nil
	})
}

// errorLogger handles rate-limited error logging
type errorLogger struct {
	lastErrorTimes  map[string]time.Time
	rateLimitWindow time.Duration
}

// newErrorLogger creates a new error logger with rate limiting
func newErrorLogger() *errorLogger {
	return &errorLogger{
		lastErrorTimes:  make(map[string]time.Time),
		rateLimitWindow: 5 * time.Minute,
	}
}

// logIfNeeded logs an error at most once per window per operation
func (e *errorLogger) logIfNeeded(operation string, err error) {
	now := time.Now()
	lastTime, exists := e.lastErrorTimes[operation]

	if !exists || now.Sub(lastTime) >= e.rateLimitWindow {
		log.Printf("Gauge query failed for %s: %v (further errors will be suppressed for %v)",
			operation, err, e.rateLimitWindow)
		e.lastErrorTimes[operation] = now
	}
}

var gaugeErrorLogger = newErrorLogger()

// updateGaugeMetricsWithCache refreshes the active sessions gauge. The cache
// TTL matches the update interval, so instances sharing a cache query the
// backend once per interval between them.
func updateGaugeMetricsWithCache(
	ctx context.Context,
	cacheWrapper *metrics.CacheWrapper,
	m metrics.Recorder,
	cacheTTL time.Duration,
) {
	active, err := cacheWrapper.GetActiveSessionsCount(ctx, cacheTTL)
	if err != nil {
		gaugeErrorLogger.logIfNeeded("count_active_sessions", err)
		return
	}
	m.SetActiveSessionsCount(int(active))
}
