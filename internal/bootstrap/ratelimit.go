package bootstrap

import (
	"fmt"
	"log"
	"time"

	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// setupLoginRateLimit returns the limiter for POST /sessions, or a no-op
// when rate limiting is disabled.
func setupLoginRateLimit(cfg *config.Config, redisClient *redis.Client) (gin.HandlerFunc, error) {
	if !cfg.EnableRateLimit {
		return func(c *gin.Context) { c.Next() }, nil
	}

	storeType := middleware.RateLimitStoreType(cfg.RateLimitStore)
	rlc := middleware.RateLimitConfig{
		RequestsPerMinute: cfg.LoginRateLimit,
		StoreType:         storeType,
		CleanupInterval:   5 * time.Minute,
		Prefix:            "tepid:ratelimit:login",
	}
	if storeType == middleware.RateLimitStoreRedis {
		rlc.Redis = redisClient
		log.Printf("Rate limiting enabled for /sessions (redis, %d/min)", cfg.LoginRateLimit)
	} else {
		log.Printf("Rate limiting enabled for /sessions (memory, %d/min, single instance only)", cfg.LoginRateLimit)
	}

	limiter, err := middleware.NewRateLimiter(rlc)
	if err != nil {
		return nil, fmt.Errorf("failed to create login rate limiter: %w", err)
	}
	return limiter, nil
}
