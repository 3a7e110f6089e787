package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/models"
)

// Reasons reported with RecordSessionInvalidated.
const (
	ReasonLogout     = "logout"
	ReasonRoleChange = "role_change"
)

var _ core.SessionInvalidator = (*Manager)(nil)

// Manager issues, validates and revokes sessions on top of a backend.
type Manager struct {
	backend    core.SessionBackend
	recorder   core.Recorder
	now        func() time.Time
	newToken   func() (string, error)
	defaultTTL int
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r core.Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// WithTokenGenerator replaces NewToken.
func WithTokenGenerator(gen func() (string, error)) Option {
	return func(m *Manager) { m.newToken = gen }
}

// NewManager creates a manager. defaultTTLHours applies when Start is
// called without a positive ttl.
func NewManager(backend core.SessionBackend, defaultTTLHours int, opts ...Option) *Manager {
	m := &Manager{
		backend:    backend,
		recorder:   metrics.NewNoopMetrics(),
		now:        time.Now,
		newToken:   NewToken,
		defaultTTL: defaultTTLHours,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) clock() time.Time {
	return m.now().UTC()
}

// Start opens a session for user lasting ttlHours. The session keeps a
// snapshot of the user without its password hash.
func (m *Manager) Start(ctx context.Context, user *models.User, ttlHours int) (*models.Session, error) {
	if user == nil || user.ShortID == "" {
		return nil, errors.New("session requires a user with a short id")
	}
	if ttlHours <= 0 {
		ttlHours = m.defaultTTL
	}

	token, err := m.newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	snapshot := user.Clone()
	snapshot.Password = ""

	now := m.clock()
	s := &models.Session{
		Token:      token,
		ShortID:    user.ShortID,
		User:       *snapshot,
		Role:       user.Role,
		ExpiresAt:  now.Add(time.Duration(ttlHours) * time.Hour),
		Persistent: true,
		CreatedAt:  now,
	}
	if err := m.backend.SaveSession(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	m.recorder.RecordSessionStarted()
	return s, nil
}

// Get returns the session for token. Expired sessions are deleted and
// reported as ErrSessionNotFound.
func (m *Manager) Get(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	s, err := m.backend.LoadSession(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if s.IsExpired(m.clock()) {
		if err := m.backend.DeleteSession(ctx, token); err != nil {
			log.Printf("[Session] Failed to delete expired session for %s: %v", s.ShortID, err)
		}
		m.recorder.RecordSessionExpired()
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// IsValid reports whether token names a live session.
func (m *Manager) IsValid(ctx context.Context, token string) bool {
	_, err := m.Get(ctx, token)
	return err == nil
}

// Touch moves the expiry to extendHours from now and sets the persistent
// flag, for whichever of the two is non-nil. The flag does not gate the
// extension. A missing session is a no-op.
func (m *Manager) Touch(ctx context.Context, token string, extendHours *int, persistent *bool) error {
	if extendHours == nil && persistent == nil {
		return nil
	}

	s, err := m.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if extendHours != nil {
		s.ExpiresAt = m.clock().Add(time.Duration(*extendHours) * time.Hour)
	}
	if persistent != nil {
		s.Persistent = *persistent
	}
	return m.backend.SaveSession(ctx, s)
}

// Invalidate ends one session. Unknown tokens are ignored.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	if err := m.backend.DeleteSession(ctx, token); err != nil {
		return err
	}
	m.recorder.RecordSessionInvalidated(ReasonLogout, 1)
	return nil
}

// InvalidateAll ends every session of shortID.
func (m *Manager) InvalidateAll(ctx context.Context, shortID string) error {
	n, err := m.backend.DeleteSessionsForUser(ctx, shortID)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[Session] Invalidated %d session(s) for %s", n, shortID)
		m.recorder.RecordSessionInvalidated(ReasonRoleChange, n)
	}
	return nil
}
