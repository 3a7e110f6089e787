package store

import (
	"errors"

	"github.com/tepidprint/tepid/internal/core"
)

var (
	// ErrRecordNotFound is returned for unknown keys, so callers can use
	// errors.Is without depending on gorm.
	ErrRecordNotFound = core.ErrRecordNotFound

	// ErrUnknownIndex is returned by QueryUsersByIndex for unsupported indexes.
	ErrUnknownIndex = errors.New("unknown index")
)
