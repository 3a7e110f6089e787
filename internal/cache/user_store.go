package cache

import (
	"context"
	"log"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
)

// Compile-time interface check.
var _ core.UserStore = (*CachedUserStore)(nil)

// CachedUserStore is a read-through cache in front of a UserStore for
// lookups by short id. Writes go to the store and evict the cached copy,
// so the next read picks up the new revision.
type CachedUserStore struct {
	store core.UserStore
	cache core.Cache[models.User]
	ttl   time.Duration
}

// NewCachedUserStore wraps store with c.
func NewCachedUserStore(
	store core.UserStore,
	c core.Cache[models.User],
	ttl time.Duration,
) *CachedUserStore {
	return &CachedUserStore{store: store, cache: c, ttl: ttl}
}

func userKey(shortID string) string {
	return "user:" + shortID
}

// GetUserByKey returns a copy of the cached record, fetching it from the
// store on a miss. Missing records are not cached.
//
// Local accounts are always read from the store and never cached: their
// password hash is not part of the encoded record, and a copy without it
// would fail logins and erase the hash when written back.
func (s *CachedUserStore) GetUserByKey(ctx context.Context, shortID string) (*models.User, error) {
	if u, err := s.cache.Get(ctx, userKey(shortID)); err == nil && !u.IsLocal() {
		return u.Clone(), nil
	}

	u, err := s.store.GetUserByKey(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if !u.IsLocal() {
		if err := s.cache.Set(ctx, userKey(shortID), *u.Clone(), s.ttl); err != nil {
			log.Printf("[Cache] Failed to cache user %s: %v", shortID, err)
		}
	}
	return u, nil
}

// QueryUsersByIndex is not cached.
func (s *CachedUserStore) QueryUsersByIndex(
	ctx context.Context,
	index, value string,
) ([]*models.User, error) {
	return s.store.QueryUsersByIndex(ctx, index, value)
}

// PutUser writes through and evicts the cached record whatever the outcome.
func (s *CachedUserStore) PutUser(ctx context.Context, u *models.User) (core.PutResult, error) {
	res, err := s.store.PutUser(ctx, u)
	s.evict(ctx, u.ShortID)
	return res, err
}

// DeleteUser deletes from the store and evicts the cached record.
func (s *CachedUserStore) DeleteUser(ctx context.Context, shortID string) error {
	err := s.store.DeleteUser(ctx, shortID)
	s.evict(ctx, shortID)
	return err
}

func (s *CachedUserStore) evict(ctx context.Context, shortID string) {
	if err := s.cache.Delete(ctx, userKey(shortID)); err != nil {
		log.Printf("[Cache] Failed to evict user %s: %v", shortID, err)
	}
}
