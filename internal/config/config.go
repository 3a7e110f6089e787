package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session backend constants
const (
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendDatabase = "database"
)

// User cache type constants
const (
	UserCacheTypeNone   = "none"
	UserCacheTypeMemory = "memory"
	UserCacheTypeRedis  = "redis"
)

// Rate limit store constants
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

type Config struct {
	// Server settings
	ServerAddr            string
	Environment           string
	IsProduction          bool
	ServerShutdownTimeout time.Duration

	// Directory settings
	LDAPEnabled             bool
	ProviderURL             string
	LDAPSearchBase          string
	AccountDomain           string // appended to long ids, without '@'
	SecurityPrincipalPrefix string // prepended to bind principals (e.g. "CAMPUS\")
	ResourceUser            string
	ResourceCredentials     string
	LDAPConnectTimeout      time.Duration
	LDAPReadTimeout         time.Duration

	// Role policy
	EldersGroup                   string
	CTFersGroups                  []string
	UsersGroups                   []string
	ExchangeStudentsGroupBase     string
	ExchangeStudentsGroupLocation string

	// Database
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string
	DBInitTimeout  time.Duration

	// Sessions
	SessionBackend         string // "memory", "redis" or "database"
	SessionDefaultTTLHours int
	SessionSweepInterval   time.Duration

	// Redis (sessions, user cache, rate limiting)
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisConnTimeout time.Duration

	// User cache in front of the store
	UserCacheType string
	UserCacheTTL  time.Duration

	// Metrics
	MetricsEnabled             bool
	MetricsToken               string // Bearer token for /metrics, empty leaves it open
	MetricsGaugeUpdateInterval time.Duration
	MetricsCacheType           string // "memory" or "redis"
	CacheInitTimeout           time.Duration

	// Rate limiting of the login endpoint
	EnableRateLimit bool
	LoginRateLimit  int // requests per minute
	RateLimitStore  string

	AutoSuggestLimit int
}

// Load reads the configuration from the environment, after loading .env
// if present.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerAddr:            getEnv("SERVER_ADDR", ":8080"),
		Environment:           env,
		IsProduction:          env == "production",
		ServerShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),

		LDAPEnabled:             getEnvBool("LDAP_ENABLED", true),
		ProviderURL:             getEnv("PROVIDER_URL", "ldap://localhost:389"),
		LDAPSearchBase:          getEnv("LDAP_SEARCH_BASE", ""),
		AccountDomain:           strings.TrimPrefix(getEnv("ACCOUNT_DOMAIN", ""), "@"),
		SecurityPrincipalPrefix: getEnv("SECURITY_PRINCIPAL_PREFIX", ""),
		ResourceUser:            getEnv("RESOURCE_USER", ""),
		ResourceCredentials:     getEnv("RESOURCE_CREDENTIALS", ""),
		LDAPConnectTimeout:      getEnvDuration("LDAP_CONNECT_TIMEOUT", 500*time.Millisecond),
		LDAPReadTimeout:         getEnvDuration("LDAP_READ_TIMEOUT", 5*time.Second),

		EldersGroup:                   getEnv("ELDERS_GROUP", ""),
		CTFersGroups:                  getEnvSlice("CTFERS_GROUP", nil),
		UsersGroups:                   getEnvSlice("USERS_GROUP", nil),
		ExchangeStudentsGroupBase:     getEnv("EXCHANGE_STUDENTS_GROUP_BASE", ""),
		ExchangeStudentsGroupLocation: getEnv("EXCHANGE_STUDENTS_GROUP_LOCATION", ""),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "tepid.db"),
		DBInitTimeout:  getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),

		SessionBackend:         getEnv("SESSION_BACKEND", SessionBackendDatabase),
		SessionDefaultTTLHours: getEnvInt("SESSION_DEFAULT_TTL_HOURS", 24),
		SessionSweepInterval:   getEnvDuration("SESSION_SWEEP_INTERVAL", time.Hour),

		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisConnTimeout: getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),

		UserCacheType: getEnv("USER_CACHE_TYPE", UserCacheTypeMemory),
		UserCacheTTL:  getEnvDuration("USER_CACHE_TTL", 5*time.Minute),

		MetricsEnabled:             getEnvBool("METRICS_ENABLED", false),
		MetricsToken:               getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateInterval: getEnvDuration("METRICS_GAUGE_UPDATE_INTERVAL", 5*time.Minute),
		MetricsCacheType:           getEnv("METRICS_CACHE_TYPE", UserCacheTypeMemory),
		CacheInitTimeout:           getEnvDuration("CACHE_INIT_TIMEOUT", 5*time.Second),

		EnableRateLimit: getEnvBool("ENABLE_RATE_LIMIT", true),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		RateLimitStore:  getEnv("RATE_LIMIT_STORE", RateLimitStoreMemory),

		AutoSuggestLimit: getEnvInt("AUTOSUGGEST_LIMIT", 10),
	}
}

// Validate checks enumerated settings and the directory settings required
// when the directory is enabled.
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis, SessionBackendDatabase:
	default:
		return fmt.Errorf(
			"invalid SESSION_BACKEND value: %q (must be one of: memory, redis, database)",
			c.SessionBackend,
		)
	}

	switch c.UserCacheType {
	case UserCacheTypeNone, UserCacheTypeMemory, UserCacheTypeRedis:
	default:
		return fmt.Errorf(
			"invalid USER_CACHE_TYPE value: %q (must be one of: none, memory, redis)",
			c.UserCacheType,
		)
	}
	if c.UserCacheType != UserCacheTypeNone && c.UserCacheTTL <= 0 {
		return fmt.Errorf("USER_CACHE_TTL must be a positive duration, got %s", c.UserCacheTTL)
	}

	if c.MetricsEnabled {
		switch c.MetricsCacheType {
		case UserCacheTypeMemory, UserCacheTypeRedis:
		default:
			return fmt.Errorf(
				"invalid METRICS_CACHE_TYPE value: %q (must be one of: memory, redis)",
				c.MetricsCacheType,
			)
		}
		if c.MetricsGaugeUpdateInterval <= 0 {
			return fmt.Errorf(
				"METRICS_GAUGE_UPDATE_INTERVAL must be a positive duration, got %s",
				c.MetricsGaugeUpdateInterval,
			)
		}
	}

	switch c.RateLimitStore {
	case RateLimitStoreMemory, RateLimitStoreRedis:
	default:
		return fmt.Errorf(
			"invalid RATE_LIMIT_STORE value: %q (must be one of: memory, redis)",
			c.RateLimitStore,
		)
	}

	if c.SessionDefaultTTLHours <= 0 {
		return fmt.Errorf(
			"SESSION_DEFAULT_TTL_HOURS must be positive, got %d",
			c.SessionDefaultTTLHours,
		)
	}

	if c.LDAPEnabled {
		if c.ProviderURL == "" {
			return errors.New("PROVIDER_URL is required when LDAP_ENABLED=true")
		}
		if c.LDAPSearchBase == "" {
			return errors.New("LDAP_SEARCH_BASE is required when LDAP_ENABLED=true")
		}
		if c.AccountDomain == "" {
			return errors.New("ACCOUNT_DOMAIN is required when LDAP_ENABLED=true")
		}
	}

	return nil
}

// ResourceCredential returns the service account used for directory
// lookups made on behalf of someone else.
func (c *Config) ResourceCredential() (user, secret string) {
	return c.ResourceUser, c.ResourceCredentials
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvSlice accepts commas as separators, and backslashes for
// compatibility with older property files.
func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ReplaceAll(value, "\\", ",")
	if parts := splitAndTrim(value, ","); len(parts) > 0 {
		return parts
	}
	return defaultValue
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
