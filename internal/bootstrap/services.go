package bootstrap

import (
	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/services"
)

// initializeServices initializes the resolver and the services built on it
func initializeServices(
	cfg *config.Config,
	users core.UserStore,
	dir core.UserDirectory,
	sessions core.SessionInvalidator,
	local core.AuthProvider,
	recorder core.Recorder,
) (*services.Resolver, *services.Authenticator, *services.UserService) {
	resolver := services.NewResolver(dir, users, sessions, recorder, services.ResolverOptions{
		DirectoryEnabled: cfg.LDAPEnabled,
		AccountDomain:    cfg.AccountDomain,
	})
	authenticator := services.NewAuthenticator(local, resolver, dir, recorder)
	userService := services.NewUserService(resolver, dir, users, cfg.AutoSuggestLimit)

	return resolver, authenticator, userService
}
