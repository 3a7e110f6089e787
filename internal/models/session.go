package models

import "time"

// Session is an authenticated handle bound to a snapshot of the user taken
// when the session started.
type Session struct {
	Token      string    `gorm:"primaryKey"      json:"token"`
	ShortID    string    `gorm:"index;not null"  json:"short_id"`
	User       User      `gorm:"serializer:json" json:"user"`
	Role       string    `                       json:"role"`
	ExpiresAt  time.Time `gorm:"index;not null"  json:"expires_at"`
	Persistent bool      `                       json:"persistent"`
	CreatedAt  time.Time `                       json:"created_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName overrides the table name used by Session to `sessions`
func (Session) TableName() string {
	return "sessions"
}
