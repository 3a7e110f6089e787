package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tepidprint/tepid/internal/services"
	"github.com/tepidprint/tepid/internal/session"
)

// respondError maps service errors onto status codes. Unknown users and
// unknown sessions get the same body so callers cannot probe for accounts.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": "Invalid credentials or session",
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "User not found",
		})
	case errors.Is(err, services.ErrUpdateConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "conflict",
			"message": "The record changed while updating, try again",
		})
	case errors.Is(err, services.ErrDirectoryDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "directory_disabled",
			"message": "The directory is not available on this server",
		})
	default:
		// ErrIdentityMismatch lands here too: it needs an operator, not a retry.
		log.Printf("[Handlers] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "server_error",
			"message": "Internal server error",
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": message,
	})
}
