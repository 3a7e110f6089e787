package session

import "errors"

var (
	// ErrSessionNotFound is returned for unknown, expired or deleted tokens.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRedisUnavailable wraps failures talking to the Redis backend.
	ErrRedisUnavailable = errors.New("redis unavailable")
)
