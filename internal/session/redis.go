package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/util"

	"github.com/redis/go-redis/v9"
)

var _ core.SessionBackend = (*RedisBackend)(nil)

// RedisBackend stores each session as a JSON blob expiring with the
// session, plus a per-user set of session keys for InvalidateAll. Keys are
// derived from a hash of the token and the stored blob omits the token, so
// raw tokens never reach Redis.
type RedisBackend struct {
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisBackend creates a backend under the given key prefix.
func NewRedisBackend(client redis.UniversalClient, prefix string) *RedisBackend {
	return &RedisBackend{
		redis:  client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (b *RedisBackend) key(token string) string {
	return b.prefix + ":session:" + util.SHA256Hex(token)
}

func (b *RedisBackend) userKey(shortID string) string {
	return b.prefix + ":user_sessions:" + shortID
}

// SaveSession writes s with a TTL matching its expiry. Sessions already
// expired are removed instead.
func (b *RedisBackend) SaveSession(ctx context.Context, s *models.Session) error {
	ttl := s.ExpiresAt.Sub(b.now())
	if ttl <= 0 {
		return b.DeleteSession(ctx, s.Token)
	}

	stored := *s
	stored.Token = ""
	data, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	sessionKey := b.key(s.Token)
	_, err = b.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey, data, ttl)
		pipe.SAdd(ctx, b.userKey(s.ShortID), sessionKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (b *RedisBackend) LoadSession(ctx context.Context, token string) (*models.Session, error) {
	data, err := b.redis.Get(ctx, b.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	s.Token = token
	return &s, nil
}

func (b *RedisBackend) DeleteSession(ctx context.Context, token string) error {
	s, err := b.LoadSession(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	sessionKey := b.key(token)
	_, err = b.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey)
		pipe.SRem(ctx, b.userKey(s.ShortID), sessionKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// DeleteSessionsForUser removes every session indexed under shortID and
// returns how many still existed. Only the members read are removed from
// the index, so a session saved concurrently stays indexed.
func (b *RedisBackend) DeleteSessionsForUser(ctx context.Context, shortID string) (int, error) {
	userKey := b.userKey(shortID)

	sessionKeys, err := b.redis.SMembers(ctx, userKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if len(sessionKeys) == 0 {
		return 0, nil
	}

	members := make([]any, len(sessionKeys))
	for i, k := range sessionKeys {
		members[i] = k
	}

	var deleted *redis.IntCmd
	_, err = b.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, sessionKeys...)
		pipe.SRem(ctx, userKey, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return int(deleted.Val()), nil
}

// Health pings Redis.
func (b *RedisBackend) Health(ctx context.Context) error {
	if err := b.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
