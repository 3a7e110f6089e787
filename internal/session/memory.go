package session

import (
	"context"
	"sync"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
)

var (
	_ core.SessionBackend        = (*MemoryBackend)(nil)
	_ core.ExpiredSessionSweeper = (*MemoryBackend)(nil)
)

// MemoryBackend keeps sessions in process. Sessions do not survive a
// restart.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{sessions: make(map[string]*models.Session)}
}

func copySession(s *models.Session) *models.Session {
	out := *s
	out.User = *s.User.Clone()
	return &out
}

func (b *MemoryBackend) SaveSession(ctx context.Context, s *models.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[s.Token] = copySession(s)
	return nil
}

func (b *MemoryBackend) LoadSession(ctx context.Context, token string) (*models.Session, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.sessions[token]
	if !ok {
		return nil, core.ErrRecordNotFound
	}
	return copySession(s), nil
}

func (b *MemoryBackend) DeleteSession(ctx context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, token)
	return nil
}

func (b *MemoryBackend) DeleteSessionsForUser(ctx context.Context, shortID string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for token, s := range b.sessions {
		if s.ShortID == shortID {
			delete(b.sessions, token)
			n++
		}
	}
	return n, nil
}

func (b *MemoryBackend) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int64
	for token, s := range b.sessions {
		if s.IsExpired(now) {
			delete(b.sessions, token)
			n++
		}
	}
	return n, nil
}

func (b *MemoryBackend) CountActiveSessions(ctx context.Context, now time.Time) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var n int64
	for _, s := range b.sessions {
		if !s.IsExpired(now) {
			n++
		}
	}
	return n, nil
}
