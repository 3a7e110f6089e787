package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/tepidprint/tepid/internal/auth"
	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/models"
)

// ErrUserExists is returned when creating a local account whose short id
// is already stored.
var ErrUserExists = errors.New("a user with this short id already exists")

// Resolve runs a single resolution with the service credential, writing the
// merged record back like the server would.
func Resolve(ctx context.Context, cfg *config.Config, identifier string) (*models.User, error) {
	app, err := newApplication(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer app.Close()

	return app.Resolver.Resolve(ctx, identifier, nil)
}

// CreateLocalUser stores a local account. An empty password is replaced by
// a generated one, which is returned.
func CreateLocalUser(
	ctx context.Context,
	cfg *config.Config,
	shortID, role, password string,
) (string, error) {
	app, err := newApplication(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer app.Close()

	return createLocalUser(ctx, app, shortID, role, password)
}

func createLocalUser(
	ctx context.Context,
	app *Application,
	shortID, role, password string,
) (string, error) {
	if password == "" {
		var err error
		if password, err = auth.GeneratePassword(); err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
	}

	user, err := auth.NewLocalUser(shortID, role, password)
	if err != nil {
		return "", err
	}
	res, err := app.Users.PutUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", shortID, err)
	}
	if !res.Accepted {
		return "", fmt.Errorf("%w: %s", ErrUserExists, shortID)
	}
	return password, nil
}

// ListLocalUsers returns every local account.
func ListLocalUsers(ctx context.Context, cfg *config.Config) ([]*models.User, error) {
	app, err := newApplication(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer app.Close()

	return app.DB.ListLocalUsers(ctx)
}
