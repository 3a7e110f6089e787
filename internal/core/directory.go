package core

import (
	"context"

	"github.com/tepidprint/tepid/internal/models"
)

// AttributeSet is the raw attribute map of one directory entry, keyed by
// lower-cased attribute name. Only the directory normalizer should read it.
type AttributeSet map[string][]string

// First returns the first value of name, or an empty string.
func (a AttributeSet) First(name string) string {
	if vs := a[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// DirectoryEntry is one search result.
type DirectoryEntry struct {
	DN         string
	Attributes AttributeSet
}

// Credential is a bind principal and its secret.
type Credential struct {
	Principal string
	Secret    string
}

// SearchRequest describes a subtree search.
type SearchRequest struct {
	BaseDN     string
	Filter     string
	Attributes []string
	SizeLimit  int
}

// DirectoryClient opens authenticated connections to the directory.
// Every connection serves one query and must be closed by the caller.
type DirectoryClient interface {
	Bind(ctx context.Context, cred Credential) (DirectoryConn, error)
}

// DirectoryConn is a bound directory connection.
type DirectoryConn interface {
	Search(ctx context.Context, req SearchRequest) (EntryCursor, error)
	// ModifyMember adds (or removes when add is false) memberDN on groupDN.
	ModifyMember(ctx context.Context, groupDN, memberDN string, add bool) error
	Close() error
}

// EntryCursor lazily yields search results. Close must be called once the
// caller is done, even when the cursor was not drained.
type EntryCursor interface {
	Next() bool
	Entry() DirectoryEntry
	Err() error
	Close() error
}

// UserDirectory answers identity questions against the directory. A nil
// credential means the configured service account.
type UserDirectory interface {
	FindByShortID(ctx context.Context, shortID string, cred *Credential) (*models.User, error)
	FindByLongID(ctx context.Context, longID string, cred *Credential) (*models.User, error)
	Suggest(ctx context.Context, like string, limit int) ([]*models.User, error)
	SetExchangeStudent(ctx context.Context, shortID string, exchange bool) error
	// VerifyCredential binds with cred and closes the connection.
	VerifyCredential(ctx context.Context, cred Credential) error
}
