package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	// ErrIdentityMismatch means the directory and the local store disagree
	// about whose record this is. It is never retried.
	ErrIdentityMismatch = errors.New("directory and cached records have different short ids")

	// ErrDirectoryDisabled is returned by operations that only the
	// directory can perform.
	ErrDirectoryDisabled = errors.New("directory is disabled")

	ErrUpdateConflict = errors.New("user record changed concurrently")
)
