package directory

import "errors"

var (
	// ErrBindFailed is returned when the directory rejects the credential or
	// cannot be reached.
	ErrBindFailed = errors.New("directory: bind failed")

	// ErrQueryFailed is returned for transport or protocol errors during a
	// search or modify.
	ErrQueryFailed = errors.New("directory: query failed")

	// ErrUserNotFound is returned when a search yields no entry.
	ErrUserNotFound = errors.New("directory: user not found")
)
