package services

import (
	"context"
	"errors"
	"log"

	"github.com/tepidprint/tepid/internal/auth"
	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/models"
)

// Authenticator checks a password against local accounts first and the
// directory second.
type Authenticator struct {
	local     core.AuthProvider
	resolver  *Resolver
	directory core.UserDirectory
	metrics   core.Recorder
}

func NewAuthenticator(
	local core.AuthProvider,
	resolver *Resolver,
	dir core.UserDirectory,
	recorder core.Recorder,
) *Authenticator {
	if recorder == nil {
		recorder = metrics.NewNoopMetrics()
	}
	return &Authenticator{
		local:     local,
		resolver:  resolver,
		directory: dir,
		metrics:   recorder,
	}
}

// Authenticate returns the resolved user when password is valid for
// identifier, and ErrInvalidCredentials otherwise. ErrIdentityMismatch is
// passed through.
func (a *Authenticator) Authenticate(
	ctx context.Context,
	identifier, password string,
) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.local.Authenticate(ctx, identifier, password)
	switch {
	case err == nil:
		a.metrics.RecordLogin(a.local.Name(), true)
		return user, nil
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Printf("[Auth] Failed for user=%s provider=%s", identifier, a.local.Name())
		a.metrics.RecordLogin(a.local.Name(), false)
		return nil, ErrInvalidCredentials
	case !errors.Is(err, auth.ErrNotLocalAccount):
		log.Printf("[Auth] Local account lookup failed for user=%s: %v", identifier, err)
	}

	if !a.resolver.DirectoryEnabled() {
		a.metrics.RecordLogin(models.AuthTypeLDAP, false)
		return nil, ErrInvalidCredentials
	}

	user, err = a.resolver.Resolve(ctx, identifier, &core.Credential{
		Principal: identifier,
		Secret:    password,
	})
	if err != nil {
		a.metrics.RecordLogin(models.AuthTypeLDAP, false)
		if errors.Is(err, ErrIdentityMismatch) {
			return nil, err
		}
		log.Printf("[Auth] Failed for user=%s provider=%s: %v", identifier, models.AuthTypeLDAP, err)
		return nil, ErrInvalidCredentials
	}

	// The lookup may have bound as a long id; confirm the password against
	// the account itself.
	if identifier != user.ShortID {
		if err := a.directory.VerifyCredential(ctx, core.Credential{
			Principal: user.ShortID,
			Secret:    password,
		}); err != nil {
			log.Printf("[Auth] Failed to authenticate %s as %s: %v", identifier, user.ShortID, err)
			a.metrics.RecordLogin(models.AuthTypeLDAP, false)
			return nil, ErrInvalidCredentials
		}
	}

	a.metrics.RecordLogin(models.AuthTypeLDAP, true)
	return user, nil
}
