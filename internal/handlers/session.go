package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tepidprint/tepid/internal/middleware"
	"github.com/tepidprint/tepid/internal/models"
)

// Authenticator checks a login.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) (*models.User, error)
}

// SessionService is the session lifecycle used by the handlers.
type SessionService interface {
	Start(ctx context.Context, user *models.User, ttlHours int) (*models.Session, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Touch(ctx context.Context, token string, extendHours *int, persistent *bool) error
	Invalidate(ctx context.Context, token string) error
}

type SessionHandler struct {
	auth     Authenticator
	sessions SessionService
}

func NewSessionHandler(auth Authenticator, sessions SessionService) *SessionHandler {
	return &SessionHandler{
		auth:     auth,
		sessions: sessions,
	}
}

type createSessionRequest struct {
	Username   string `json:"username"   binding:"required"`
	Password   string `json:"password"   binding:"required"`
	Persistent *bool  `json:"persistent"`
	TTLHours   int    `json:"ttl_hours"`
}

// Create logs a user in and returns the new session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}
	if req.TTLHours < 0 {
		badRequest(c, "ttl_hours must not be negative")
		return
	}

	ctx := c.Request.Context()
	user, err := h.auth.Authenticate(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	s, err := h.sessions.Start(ctx, user, req.TTLHours)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Persistent != nil && !*req.Persistent {
		if err := h.sessions.Touch(ctx, s.Token, nil, req.Persistent); err != nil {
			respondError(c, err)
			return
		}
		s.Persistent = false
	}

	c.Header(middleware.HeaderSession, s.Token)
	c.Header(middleware.HeaderRole, s.Role)
	c.JSON(http.StatusCreated, s)
}

// Get returns a live session.
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.sessions.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Delete ends a session. Deleting an unknown session succeeds.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessions.Invalidate(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
