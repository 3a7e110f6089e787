package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/mocks"
	"github.com/tepidprint/tepid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testUser(shortID string) *models.User {
	return &models.User{
		ShortID:  shortID,
		LongID:   shortID + "@example.edu",
		Role:     models.RoleUser,
		Groups:   []string{"Printing-Users"},
		Password: "$2a$10$hash",
	}
}

func TestManager_StartAndGet(t *testing.T) {
	clock := newFakeClock()
	backend := NewMemoryBackend()
	m := NewManager(backend, 24, WithClock(clock.Now))
	ctx := context.Background()

	s, err := m.Start(ctx, testUser("jdoe3"), 0)
	require.NoError(t, err)
	assert.Len(t, s.Token, 26)
	assert.Equal(t, "jdoe3", s.ShortID)
	assert.Equal(t, models.RoleUser, s.Role)
	assert.Equal(t, clock.Now().Add(24*time.Hour), s.ExpiresAt)
	assert.Empty(t, s.User.Password)

	got, err := m.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.Token, got.Token)
	assert.True(t, m.IsValid(ctx, s.Token))
}

func TestManager_StartUsesRequestedTTL(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(NewMemoryBackend(), 24, WithClock(clock.Now))

	s, err := m.Start(context.Background(), testUser("jdoe3"), 2)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(2*time.Hour), s.ExpiresAt)
}

func TestManager_StartRequiresShortID(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)

	_, err := m.Start(context.Background(), &models.User{}, 1)
	assert.Error(t, err)
	_, err = m.Start(context.Background(), nil, 1)
	assert.Error(t, err)
}

func TestManager_StartDoesNotAliasUser(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)
	u := testUser("jdoe3")

	s, err := m.Start(context.Background(), u, 1)
	require.NoError(t, err)
	u.Groups[0] = "changed"

	assert.Equal(t, "Printing-Users", s.User.Groups[0])
	assert.Equal(t, "$2a$10$hash", u.Password)
}

func TestManager_ExpiredSessionIsDeleted(t *testing.T) {
	clock := newFakeClock()
	backend := NewMemoryBackend()
	m := NewManager(backend, 24, WithClock(clock.Now))
	ctx := context.Background()

	s, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)

	_, err = m.Get(ctx, s.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, m.IsValid(ctx, s.Token))

	_, err = backend.LoadSession(ctx, s.Token)
	assert.ErrorIs(t, err, core.ErrRecordNotFound)
}

func TestManager_GetUnknownToken(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)

	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_GetBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSessionBackend(ctrl)
	boom := errors.New("connection refused")
	backend.EXPECT().LoadSession(gomock.Any(), "tok").Return(nil, boom)

	_, err := NewManager(backend, 24).Get(context.Background(), "tok")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Touch(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(NewMemoryBackend(), 24, WithClock(clock.Now))
	ctx := context.Background()

	s, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	assert.True(t, s.Persistent)

	clock.Advance(30 * time.Minute)
	hours := 5
	notPersistent := false
	require.NoError(t, m.Touch(ctx, s.Token, &hours, &notPersistent))

	got, err := m.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(5*time.Hour), got.ExpiresAt)
	assert.False(t, got.Persistent)

	// Only the persistent flag
	persistent := true
	require.NoError(t, m.Touch(ctx, s.Token, nil, &persistent))
	got, err = m.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.True(t, got.Persistent)
	assert.Equal(t, clock.Now().Add(5*time.Hour), got.ExpiresAt)
}

func TestManager_TouchExtendsNonPersistentSession(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(NewMemoryBackend(), 24, WithClock(clock.Now))
	ctx := context.Background()

	s, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	notPersistent := false
	require.NoError(t, m.Touch(ctx, s.Token, nil, &notPersistent))

	clock.Advance(30 * time.Minute)
	hours := 3
	require.NoError(t, m.Touch(ctx, s.Token, &hours, nil))

	got, err := m.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.False(t, got.Persistent)
	assert.Equal(t, clock.Now().Add(3*time.Hour), got.ExpiresAt)
}

func TestManager_TouchMissingIsNoop(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)
	hours := 1
	assert.NoError(t, m.Touch(context.Background(), "missing", &hours, nil))
}

func TestManager_Invalidate(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)
	ctx := context.Background()

	s, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)

	require.NoError(t, m.Invalidate(ctx, s.Token))
	assert.False(t, m.IsValid(ctx, s.Token))

	// Idempotent
	assert.NoError(t, m.Invalidate(ctx, s.Token))
}

func TestManager_InvalidateAll(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24)
	ctx := context.Background()

	a, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	b, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	c, err := m.Start(ctx, testUser("asmith"), 1)
	require.NoError(t, err)

	require.NoError(t, m.InvalidateAll(ctx, "jdoe3"))

	assert.False(t, m.IsValid(ctx, a.Token))
	assert.False(t, m.IsValid(ctx, b.Token))
	assert.True(t, m.IsValid(ctx, c.Token))
}

func TestManager_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	clock := newFakeClock()
	m := NewManager(NewMemoryBackend(), 24, WithClock(clock.Now), WithRecorder(recorder))
	ctx := context.Background()

	recorder.EXPECT().RecordSessionStarted().Times(3)
	recorder.EXPECT().RecordSessionInvalidated(ReasonRoleChange, 2)
	recorder.EXPECT().RecordSessionExpired()

	_, err := m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	_, err = m.Start(ctx, testUser("jdoe3"), 1)
	require.NoError(t, err)
	require.NoError(t, m.InvalidateAll(ctx, "jdoe3"))

	s, err := m.Start(ctx, testUser("asmith"), 1)
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)
	_, err = m.Get(ctx, s.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_TokenFailure(t *testing.T) {
	m := NewManager(NewMemoryBackend(), 24, WithTokenGenerator(func() (string, error) {
		return "", errors.New("entropy exhausted")
	}))

	_, err := m.Start(context.Background(), testUser("jdoe3"), 1)
	assert.Error(t, err)
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
