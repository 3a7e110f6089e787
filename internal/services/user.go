package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
)

// maxUpdateAttempts bounds read-modify-write retries on revision conflicts.
const maxUpdateAttempts = 3

// UserService serves user lookups, autosuggest and the preferences a user
// owns.
type UserService struct {
	resolver     *Resolver
	directory    core.UserDirectory
	store        core.UserStore
	suggestLimit int
}

func NewUserService(
	resolver *Resolver,
	dir core.UserDirectory,
	store core.UserStore,
	suggestLimit int,
) *UserService {
	return &UserService{
		resolver:     resolver,
		directory:    dir,
		store:        store,
		suggestLimit: suggestLimit,
	}
}

// GetUser resolves identifier with the service account.
func (s *UserService) GetUser(ctx context.Context, identifier string) (*models.User, error) {
	return s.resolver.Resolve(ctx, identifier, nil)
}

// Suggest searches the directory for users whose short or long id starts
// with like. limit <= 0 uses the configured default. The search runs in its
// own goroutine; with the directory disabled the future resolves empty.
func (s *UserService) Suggest(ctx context.Context, like string, limit int) *Future[[]*models.User] {
	like = strings.TrimSpace(like)
	if !s.resolver.DirectoryEnabled() || like == "" {
		return Resolved([]*models.User{})
	}
	if limit <= 0 {
		limit = s.suggestLimit
	}
	return Go(ctx, func(ctx context.Context) ([]*models.User, error) {
		users, err := s.directory.Suggest(ctx, like, limit)
		if err != nil {
			log.Printf("[Users] Autosuggest for %q failed: %v", like, err)
			return nil, err
		}
		return users, nil
	})
}

// SetExchangeStudent changes the user's exchange group membership and
// returns the record resolved afterwards, so a role change takes effect.
func (s *UserService) SetExchangeStudent(
	ctx context.Context,
	identifier string,
	exchange bool,
) (*models.User, error) {
	if !s.resolver.DirectoryEnabled() {
		return nil, ErrDirectoryDisabled
	}

	user, err := s.resolver.Resolve(ctx, identifier, nil)
	if err != nil {
		return nil, err
	}
	if err := s.directory.SetExchangeStudent(ctx, user.ShortID, exchange); err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, user.ShortID, nil)
}

// SetNickname stores a nickname; an empty nickname clears it.
func (s *UserService) SetNickname(ctx context.Context, shortID, nickname string) (*models.User, error) {
	nickname = strings.TrimSpace(nickname)
	return s.update(ctx, shortID, func(u *models.User) {
		u.Nickname = nickname
	})
}

// SetColorPrinting toggles color printing for the user.
func (s *UserService) SetColorPrinting(ctx context.Context, shortID string, enabled bool) (*models.User, error) {
	return s.update(ctx, shortID, func(u *models.User) {
		u.ColorPrinting = enabled
	})
}

// update applies mutate to the stored record and writes it back, retrying
// when another writer got there first. A user with no stored record yet is
// resolved first so the record exists.
func (s *UserService) update(
	ctx context.Context,
	shortID string,
	mutate func(u *models.User),
) (*models.User, error) {
	for range maxUpdateAttempts {
		u, err := s.store.GetUserByKey(ctx, shortID)
		if errors.Is(err, core.ErrRecordNotFound) {
			if _, err := s.resolver.Resolve(ctx, shortID, nil); err != nil {
				return nil, err
			}
			u, err = s.store.GetUserByKey(ctx, shortID)
		}
		if err != nil {
			if errors.Is(err, core.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}

		mutate(u)
		u.UpdateNameInformation()

		res, err := s.store.PutUser(ctx, u)
		if err != nil {
			return nil, err
		}
		if res.Accepted {
			u.Revision = res.Revision
			return u, nil
		}
		log.Printf("[Users] Revision conflict updating %s, retrying", shortID)
	}
	return nil, ErrUpdateConflict
}
