package store

import (
	"context"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
)

var (
	_ core.SessionBackend        = (*Store)(nil)
	_ core.ExpiredSessionSweeper = (*Store)(nil)
)

// Session operations

func (s *Store) SaveSession(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Save(session).Error
}

func (s *Store) LoadSession(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &session, nil
}

// DeleteSession is idempotent.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

func (s *Store) DeleteSessionsForUser(ctx context.Context, shortID string) (int, error) {
	result := s.db.WithContext(ctx).Where("short_id = ?", shortID).Delete(&models.Session{})
	return int(result.RowsAffected), result.Error
}

// DeleteExpiredSessions removes sessions whose expiry is at or before now.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

// CountActiveSessions counts sessions that have not expired at now.
func (s *Store) CountActiveSessions(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("expires_at > ?", now).
		Count(&count).Error
	return count, err
}
