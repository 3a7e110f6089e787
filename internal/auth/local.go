package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/util"

	"golang.org/x/crypto/bcrypt"
)

var _ core.AuthProvider = (*LocalProvider)(nil)

// LocalProvider authenticates accounts whose password hash lives in the
// store rather than in the directory.
type LocalProvider struct {
	store core.UserStore
}

// NewLocalProvider creates a new local authentication provider
func NewLocalProvider(s core.UserStore) *LocalProvider {
	return &LocalProvider{store: s}
}

// Authenticate verifies the password of the local account keyed by
// identifier. It returns ErrNotLocalAccount when there is no such account.
func (p *LocalProvider) Authenticate(
	ctx context.Context,
	identifier, password string,
) (*models.User, error) {
	user, err := p.store.GetUserByKey(ctx, identifier)
	if err != nil {
		if errors.Is(err, core.ErrRecordNotFound) {
			return nil, ErrNotLocalAccount
		}
		return nil, err
	}
	if !user.IsLocal() {
		return nil, ErrNotLocalAccount
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.UpdateNameInformation()
	return user, nil
}

// Name returns provider name for logging
func (p *LocalProvider) Name() string {
	return models.AuthTypeLocal
}

// HashPassword returns the bcrypt hash stored for local accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GeneratePassword returns a random password for a new local account.
func GeneratePassword() (string, error) {
	return util.RandomToken(80)
}

// NewLocalUser builds a local account record with a hashed password.
func NewLocalUser(shortID, role, password string) (*models.User, error) {
	if shortID == "" {
		return nil, errors.New("short id is required")
	}
	if models.RoleRank(role) == 0 {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ShortID:       shortID,
		StudentID:     models.StudentIDUnknown,
		DisplayName:   shortID,
		GivenName:     shortID,
		Role:          role,
		JobExpiration: models.DefaultJobExpiration,
		AuthType:      models.AuthTypeLocal,
		Password:      hash,
	}
	u.UpdateNameInformation()
	return u, nil
}
