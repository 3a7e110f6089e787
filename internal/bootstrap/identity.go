package bootstrap

import (
	"log"

	"github.com/tepidprint/tepid/internal/cache"
	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/directory"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/session"
	"github.com/tepidprint/tepid/internal/store"

	"github.com/redis/go-redis/v9"
)

// initializeUserStore puts the user cache, if any, in front of the store.
func initializeUserStore(
	cfg *config.Config,
	db *store.Store,
	userCache core.Cache[models.User],
) core.UserStore {
	if userCache == nil {
		return db
	}
	return cache.NewCachedUserStore(db, userCache, cfg.UserCacheTTL)
}

// initializeDirectory builds the LDAP-backed directory. It is built even
// when LDAP_ENABLED=false; the services then never call it.
func initializeDirectory(cfg *config.Config, recorder core.Recorder) core.UserDirectory {
	client := directory.NewLDAPClient(
		cfg.ProviderURL,
		cfg.SecurityPrincipalPrefix,
		cfg.LDAPConnectTimeout,
		cfg.LDAPReadTimeout,
	)
	policy := directory.RolePolicy{
		EldersGroup:       cfg.EldersGroup,
		CTFersGroups:      cfg.CTFersGroups,
		UsersGroups:       cfg.UsersGroups,
		ExchangeGroupBase: cfg.ExchangeStudentsGroupBase,
	}

	serviceUser, serviceSecret := cfg.ResourceCredential()
	if cfg.LDAPEnabled {
		log.Printf("[Directory] LDAP enabled (url: %s, base: %s)", cfg.ProviderURL, cfg.LDAPSearchBase)
		if serviceUser == "" {
			log.Printf("[Directory] RESOURCE_USER is empty; lookups without user credentials will fail")
		}
	} else {
		log.Printf("[Directory] LDAP disabled, resolving from the local store only")
	}

	return directory.New(client, policy, directory.Options{
		SearchBase: cfg.LDAPSearchBase,
		Service: core.Credential{
			Principal: serviceUser,
			Secret:    serviceSecret,
		},
		ExchangeGroupLocation: cfg.ExchangeStudentsGroupLocation,
	}, recorder)
}

// initializeSessionBackend selects where sessions live.
func initializeSessionBackend(
	cfg *config.Config,
	db *store.Store,
	redisClient *redis.Client,
) core.SessionBackend {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		log.Printf("[Session] Backend: redis (addr=%s)", cfg.RedisAddr)
		return session.NewRedisBackend(redisClient, "tepid")
	case config.SessionBackendMemory:
		log.Println("[Session] Backend: memory (sessions are lost on restart)")
		return session.NewMemoryBackend()
	default:
		log.Println("[Session] Backend: database")
		return db
	}
}
