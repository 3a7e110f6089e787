package core

import (
	"context"

	"github.com/tepidprint/tepid/internal/models"
)

// AuthProvider is the interface that password-based authentication
// backends must implement.
type AuthProvider interface {
	Authenticate(ctx context.Context, identifier, password string) (*models.User, error)
	Name() string
}
