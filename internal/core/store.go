package core

import (
	"context"
	"errors"

	"github.com/tepidprint/tepid/internal/models"
)

// ErrRecordNotFound is returned by stores when a key has no record.
var ErrRecordNotFound = errors.New("record not found")

// Secondary indexes understood by UserStore.QueryUsersByIndex.
const (
	IndexLongID    = "long_id"
	IndexStudentID = "student_id"
)

// PutResult reports whether a write was applied and the revision the record
// now carries.
type PutResult struct {
	Accepted bool
	Revision int64
}

// UserStore is the local, writable document store for user records.
type UserStore interface {
	GetUserByKey(ctx context.Context, shortID string) (*models.User, error)
	QueryUsersByIndex(ctx context.Context, index, value string) ([]*models.User, error)
	// PutUser writes u when u.Revision matches the stored revision (or the
	// record does not exist yet).
	PutUser(ctx context.Context, u *models.User) (PutResult, error)
	DeleteUser(ctx context.Context, shortID string) error
}
