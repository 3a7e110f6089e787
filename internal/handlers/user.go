package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/services"
)

// UserService is what the user endpoints need from services.UserService.
type UserService interface {
	GetUser(ctx context.Context, identifier string) (*models.User, error)
	Suggest(ctx context.Context, like string, limit int) *services.Future[[]*models.User]
	SetExchangeStudent(ctx context.Context, identifier string, exchange bool) (*models.User, error)
	SetNickname(ctx context.Context, shortID, nickname string) (*models.User, error)
	SetColorPrinting(ctx context.Context, shortID string, enabled bool) (*models.User, error)
}

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get resolves a user by short id, long id or student id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Refresh re-reads the user from the directory and stores the merge.
// Resolution always writes back, so this is Get with elder-only access.
func (h *UserHandler) Refresh(c *gin.Context) {
	h.Get(c)
}

// Autosuggest lists directory users whose ids start with the path value.
func (h *UserHandler) Autosuggest(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	future := h.users.Suggest(ctx, c.Param("like"), limit)
	users, err := future.Await(ctx)
	if err != nil {
		future.Cancel()
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type exchangeRequest struct {
	Exchange *bool `json:"exchange" binding:"required"`
}

// SetExchange adds or removes the user from the current exchange group.
func (h *UserHandler) SetExchange(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "exchange is required")
		return
	}

	user, err := h.users.SetExchangeStudent(c.Request.Context(), c.Param("identifier"), *req.Exchange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

func (h *UserHandler) SetNickname(c *gin.Context) {
	var req nicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.users.SetNickname(c.Request.Context(), c.Param("identifier"), req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type colorRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *UserHandler) SetColor(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "enabled is required")
		return
	}

	user, err := h.users.SetColorPrinting(c.Request.Context(), c.Param("identifier"), *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
