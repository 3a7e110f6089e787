package core

import (
	"context"
	"time"

	"github.com/tepidprint/tepid/internal/models"
)

// SessionBackend persists sessions by token.
type SessionBackend interface {
	SaveSession(ctx context.Context, s *models.Session) error
	// LoadSession returns ErrRecordNotFound when the token is unknown.
	LoadSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteSessionsForUser(ctx context.Context, shortID string) (int, error)
}

// ExpiredSessionSweeper is implemented by backends that do not expire
// records on their own.
type ExpiredSessionSweeper interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionInvalidator drops every session of a user.
type SessionInvalidator interface {
	InvalidateAll(ctx context.Context, shortID string) error
}
