package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/tepidprint/tepid/internal/config"

	"github.com/redis/go-redis/v9"
)

// initializeRedisClient creates the go-redis client shared by the session
// backend and the rate limiter. Returns nil when nothing is configured to
// use Redis. The rueidis caches dial their own connections.
func initializeRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.SessionBackend != config.SessionBackendRedis &&
		!(cfg.EnableRateLimit && cfg.RateLimitStore == config.RateLimitStoreRedis) {
		return nil, nil //nolint:nilnil // redis client not needed in this configuration
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, cfg.RedisConnTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("Redis client initialized (address: %s, db: %d)", cfg.RedisAddr, cfg.RedisDB)
	return client, nil
}
