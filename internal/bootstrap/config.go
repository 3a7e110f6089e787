package bootstrap

import (
	"errors"
	"fmt"

	"github.com/tepidprint/tepid/internal/config"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateRedisConfig(cfg); err != nil {
		return fmt.Errorf("invalid redis configuration: %w", err)
	}
	return nil
}

// needsRedis reports whether any component is configured to use Redis.
func needsRedis(cfg *config.Config) bool {
	return cfg.SessionBackend == config.SessionBackendRedis ||
		cfg.UserCacheType == config.UserCacheTypeRedis ||
		(cfg.MetricsEnabled && cfg.MetricsCacheType == config.UserCacheTypeRedis) ||
		(cfg.EnableRateLimit && cfg.RateLimitStore == config.RateLimitStoreRedis)
}

// validateRedisConfig checks that Redis is reachable by address when
// something depends on it.
func validateRedisConfig(cfg *config.Config) error {
	if needsRedis(cfg) && cfg.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required when a redis backend is selected")
	}
	return nil
}
