package bootstrap

import (
	"github.com/tepidprint/tepid/internal/handlers"
)

// handlerSet holds all HTTP handlers
type handlerSet struct {
	session *handlers.SessionHandler
	user    *handlers.UserHandler
}

// initializeHandlers initializes all HTTP handlers
func initializeHandlers(
	authenticator handlers.Authenticator,
	sessions handlers.SessionService,
	users handlers.UserService,
) handlerSet {
	return handlerSet{
		session: handlers.NewSessionHandler(authenticator, sessions),
		user:    handlers.NewUserHandler(users),
	}
}
