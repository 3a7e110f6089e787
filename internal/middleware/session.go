package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/session"
)

// Session headers understood and emitted by SessionAuth.
const (
	HeaderSession           = "X-TEPID-Session"
	HeaderRole              = "X-TEPID-Role"
	HeaderSessionTimeout    = "X-TEPID-Session-Timeout"
	HeaderSessionPersistent = "X-TEPID-Session-Persistent"
)

// SessionSource is the part of session.Manager the middleware needs.
type SessionSource interface {
	Get(ctx context.Context, token string) (*models.Session, error)
	Touch(ctx context.Context, token string, extendHours *int, persistent *bool) error
}

// SessionAuth attaches the session named by the request, if any. It never
// rejects a request; RequireSession and RequireRole do that.
func SessionAuth(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c.Request)
		if token == "" {
			c.Next()
			return
		}

		s, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Printf("[Auth] Failed to load session: %v", err)
			}
			c.Next()
			return
		}

		extend, persistent := sessionAdjustments(c.Request)
		if extend != nil || persistent != nil {
			if err := sessions.Touch(c.Request.Context(), token, extend, persistent); err != nil {
				log.Printf("[Auth] Failed to update session for %s: %v", s.ShortID, err)
			} else if refreshed, err := sessions.Get(c.Request.Context(), token); err == nil {
				s = refreshed
			}
		}

		models.AttachSession(c, s)
		c.Header(HeaderSession, s.Token)
		c.Header(HeaderRole, s.Role)
		c.Next()
	}
}

// SessionToken reads the token from "Authorization: Token <token>" or the
// X-TEPID-Session header.
func SessionToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Token "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(r.Header.Get(HeaderSession))
}

func sessionAdjustments(r *http.Request) (extend *int, persistent *bool) {
	if v := strings.TrimSpace(r.Header.Get(HeaderSessionTimeout)); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			extend = &hours
		}
	}
	if v, ok := r.Header[http.CanonicalHeaderKey(HeaderSessionPersistent)]; ok && len(v) > 0 {
		p := !strings.EqualFold(strings.TrimSpace(v[0]), "false")
		persistent = &p
	}
	return extend, persistent
}

// RequireSession rejects requests without a live session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if models.GetSessionFromContext(c) == nil {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose session role ranks below min.
func RequireRole(min string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := models.GetSessionFromContext(c)
		if s == nil {
			abortUnauthorized(c)
			return
		}
		if models.RoleRank(s.Role) < models.RoleRank(min) {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireOwnerOrRole lets through the user named by the path parameter
// param, or anyone ranking at least min.
func RequireOwnerOrRole(param, min string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := models.GetSessionFromContext(c)
		if s == nil {
			abortUnauthorized(c)
			return
		}
		if s.ShortID == c.Param(param) || models.RoleRank(s.Role) >= models.RoleRank(min) {
			c.Next()
			return
		}
		abortForbidden(c)
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": "A valid session is required",
	})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":   "forbidden",
		"message": "Insufficient permissions",
	})
}
