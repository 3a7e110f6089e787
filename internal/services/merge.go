package services

import (
	"fmt"
	"slices"

	"github.com/tepidprint/tepid/internal/models"
)

// Merge combines a directory record with the cached record of the same
// user. The directory owns identity, names, groups, enrollments and role.
// The cache owns the user's preferences and the store bookkeeping. Neither
// input is modified.
func Merge(directory, cached *models.User) (*models.User, error) {
	if directory == nil {
		return nil, ErrUserNotFound
	}
	if directory.ShortID == "" {
		return nil, fmt.Errorf("%w: directory record has no short id", ErrIdentityMismatch)
	}
	if cached == nil {
		return directory, nil
	}
	if cached.ShortID != directory.ShortID {
		return nil, fmt.Errorf(
			"%w: directory %q, cached %q",
			ErrIdentityMismatch,
			directory.ShortID,
			cached.ShortID,
		)
	}

	out := directory.Clone()
	if out.StudentID == models.StudentIDUnknown {
		out.StudentID = cached.StudentID
	}

	out.PreferredName = slices.Clone(cached.PreferredName)
	out.Nickname = cached.Nickname
	out.ColorPrinting = cached.ColorPrinting
	out.JobExpiration = cached.JobExpiration

	if cached.AuthType != "" {
		out.AuthType = cached.AuthType
	}
	out.Password = cached.Password
	out.Revision = cached.Revision
	out.CreatedAt = cached.CreatedAt
	out.UpdatedAt = cached.UpdatedAt

	out.UpdateNameInformation()
	return out, nil
}
