package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotLocalAccount is returned when the identifier does not name a
	// local account, so the caller should try the directory instead.
	ErrNotLocalAccount = errors.New("not a local account")
)
