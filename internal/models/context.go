package models

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	userContextKey    contextKey = "user"
	sessionContextKey contextKey = "session"
)

// SetUserContext returns a copy of ctx carrying user.
func SetUserContext(ctx context.Context, user *User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext returns the user stored by SetUserContext or by the
// session middleware on a gin context.
func GetUserFromContext(ctx context.Context) *User {
	if ginCtx, ok := ctx.(*gin.Context); ok {
		if v, exists := ginCtx.Get(string(userContextKey)); exists {
			if user, ok := v.(*User); ok {
				return user
			}
		}
		return nil
	}
	if user, ok := ctx.Value(userContextKey).(*User); ok {
		return user
	}
	return nil
}

// GetSessionFromContext returns the session attached by the session middleware.
func GetSessionFromContext(ctx context.Context) *Session {
	if ginCtx, ok := ctx.(*gin.Context); ok {
		if v, exists := ginCtx.Get(string(sessionContextKey)); exists {
			if s, ok := v.(*Session); ok {
				return s
			}
		}
		return nil
	}
	if s, ok := ctx.Value(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}

// AttachSession stores the session and its user on the gin context.
func AttachSession(c *gin.Context, s *Session) {
	c.Set(string(sessionContextKey), s)
	c.Set(string(userContextKey), &s.User)
}

// GetShortIDFromContext returns the short id of the authenticated user, or
// an empty string.
func GetShortIDFromContext(ctx context.Context) string {
	if user := GetUserFromContext(ctx); user != nil {
		return user.ShortID
	}
	return ""
}
