package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/directory"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Resolve outcomes reported to metrics.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeMismatch = "mismatch"
	outcomeError    = "error"
)

// Write-back results reported to metrics.
const (
	writeBackWritten  = "written"
	writeBackSkipped  = "skipped"
	writeBackConflict = "conflict"
	writeBackFailed   = "failed"
)

// persistedEqual ignores the timestamps the store maintains itself.
var persistedEqual = []cmp.Option{
	cmpopts.IgnoreFields(models.User{}, "CreatedAt", "UpdatedAt"),
	cmpopts.EquateEmpty(),
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	DirectoryEnabled bool
	// AccountDomain completes long ids given without a domain.
	AccountDomain string
}

// Resolver turns an identifier into a merged user record, reading the
// directory and the local store and writing the merged record back.
type Resolver struct {
	directory core.UserDirectory
	store     core.UserStore
	sessions  core.SessionInvalidator
	metrics   core.Recorder
	opts      ResolverOptions
}

func NewResolver(
	dir core.UserDirectory,
	store core.UserStore,
	sessions core.SessionInvalidator,
	recorder core.Recorder,
	opts ResolverOptions,
) *Resolver {
	if recorder == nil {
		recorder = metrics.NewNoopMetrics()
	}
	return &Resolver{
		directory: dir,
		store:     store,
		sessions:  sessions,
		metrics:   recorder,
		opts:      opts,
	}
}

// DirectoryEnabled reports whether the directory is consulted at all.
func (r *Resolver) DirectoryEnabled() bool {
	return r.opts.DirectoryEnabled
}

// Resolve looks identifier up as a student id, long id or short id. cred
// is used to bind to the directory; nil means the service account.
func (r *Resolver) Resolve(
	ctx context.Context,
	identifier string,
	cred *core.Credential,
) (*models.User, error) {
	kind := Classify(identifier)
	start := time.Now()

	user, err := r.resolve(ctx, kind, identifier, cred)

	outcome := outcomeFound
	switch {
	case err == nil:
	case errors.Is(err, ErrUserNotFound):
		outcome = outcomeNotFound
	case errors.Is(err, ErrIdentityMismatch):
		outcome = outcomeMismatch
	default:
		outcome = outcomeError
	}
	r.metrics.RecordResolve(kind.String(), outcome, time.Since(start))

	return user, err
}

func (r *Resolver) resolve(
	ctx context.Context,
	kind IdentifierKind,
	identifier string,
	cred *core.Credential,
) (*models.User, error) {
	if identifier == "" {
		return nil, ErrUserNotFound
	}

	if !r.opts.DirectoryEnabled {
		cached, err := r.lookupCache(ctx, kind, identifier)
		if err != nil {
			log.Printf("[Resolver] Store lookup failed for %s: %v", identifier, err)
			return nil, ErrUserNotFound
		}
		if cached == nil {
			return nil, ErrUserNotFound
		}
		cached.UpdateNameInformation()
		return cached, nil
	}

	if kind == KindStudentID {
		return r.resolveByStudentID(ctx, identifier, cred)
	}
	return r.resolveConcurrently(ctx, kind, identifier, cred)
}

// resolveByStudentID needs the cached record first: the directory can only
// be searched by short or long id.
func (r *Resolver) resolveByStudentID(
	ctx context.Context,
	identifier string,
	cred *core.Credential,
) (*models.User, error) {
	cached, err := r.lookupCache(ctx, KindStudentID, identifier)
	if err != nil {
		log.Printf("[Resolver] Store lookup failed for student id %s: %v", identifier, err)
		return nil, ErrUserNotFound
	}
	if cached == nil {
		return nil, ErrUserNotFound
	}

	if cred != nil {
		owner := *cred
		owner.Principal = cached.ShortID
		cred = &owner
	}

	dirUser, err := r.directory.FindByShortID(ctx, cached.ShortID, cred)
	if err != nil {
		r.logDirectoryFailure(identifier, err)
		return nil, ErrUserNotFound
	}

	return r.finish(ctx, dirUser, cached)
}

type lookupResult struct {
	user *models.User
	err  error
}

// resolveConcurrently queries the directory and the store at the same
// time. A directory failure returns at once without waiting for the store.
func (r *Resolver) resolveConcurrently(
	ctx context.Context,
	kind IdentifierKind,
	identifier string,
	cred *core.Credential,
) (*models.User, error) {
	dirCh := make(chan lookupResult, 1)
	cacheCh := make(chan lookupResult, 1)

	go func() {
		u, err := r.lookupDirectory(ctx, kind, identifier, cred)
		dirCh <- lookupResult{user: u, err: err}
	}()
	go func() {
		u, err := r.lookupCache(ctx, kind, identifier)
		cacheCh <- lookupResult{user: u, err: err}
	}()

	var dir lookupResult
	select {
	case dir = <-dirCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if dir.err != nil {
		r.logDirectoryFailure(identifier, dir.err)
		return nil, ErrUserNotFound
	}

	var cached lookupResult
	select {
	case cached = <-cacheCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if cached.err != nil {
		log.Printf("[Resolver] Store lookup failed for %s: %v", identifier, cached.err)
	}

	return r.finish(ctx, dir.user, cached.user)
}

func (r *Resolver) lookupDirectory(
	ctx context.Context,
	kind IdentifierKind,
	identifier string,
	cred *core.Credential,
) (*models.User, error) {
	if kind == KindLongID {
		return r.directory.FindByLongID(ctx, CanonicalLongID(identifier, r.opts.AccountDomain), cred)
	}
	return r.directory.FindByShortID(ctx, identifier, cred)
}

// lookupCache returns nil, nil when the store has no record.
func (r *Resolver) lookupCache(
	ctx context.Context,
	kind IdentifierKind,
	identifier string,
) (*models.User, error) {
	switch kind {
	case KindShortID:
		u, err := r.store.GetUserByKey(ctx, identifier)
		if errors.Is(err, core.ErrRecordNotFound) {
			return nil, nil
		}
		return u, err
	case KindLongID:
		return r.firstByIndex(ctx, core.IndexLongID, CanonicalLongID(identifier, r.opts.AccountDomain))
	default:
		id, err := strconv.Atoi(identifier)
		if err != nil {
			return nil, nil
		}
		return r.firstByIndex(ctx, core.IndexStudentID, strconv.Itoa(id))
	}
}

func (r *Resolver) firstByIndex(ctx context.Context, index, value string) (*models.User, error) {
	users, err := r.store.QueryUsersByIndex(ctx, index, value)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// finish merges, writes back and invalidates sessions on a role change.
func (r *Resolver) finish(ctx context.Context, dirUser, cached *models.User) (*models.User, error) {
	merged, err := Merge(dirUser, cached)
	if err != nil {
		log.Printf("[Resolver] Refusing to merge: %v", err)
		return nil, err
	}

	r.writeBack(ctx, merged, cached)

	if r.sessions != nil && cached != nil && cached.Role != "" && cached.Role != merged.Role {
		log.Printf(
			"[Resolver] Role of %s changed from %q to %q, ending sessions",
			merged.ShortID, cached.Role, merged.Role,
		)
		if err := r.sessions.InvalidateAll(ctx, merged.ShortID); err != nil {
			log.Printf("[Resolver] Failed to invalidate sessions of %s: %v", merged.ShortID, err)
		}
	}

	return merged, nil
}

// writeBack stores merged unless it already matches cached. Failures are
// logged and otherwise ignored.
func (r *Resolver) writeBack(ctx context.Context, merged, cached *models.User) {
	if cached != nil && cmp.Equal(merged, cached, persistedEqual...) {
		r.metrics.RecordWriteBack(writeBackSkipped)
		return
	}

	res, err := r.store.PutUser(ctx, merged)
	switch {
	case err != nil:
		log.Printf("[Resolver] Could not write %s to the store: %v", merged.ShortID, err)
		r.metrics.RecordWriteBack(writeBackFailed)
	case !res.Accepted:
		log.Printf("[Resolver] Stale write of %s rejected at revision %d", merged.ShortID, merged.Revision)
		r.metrics.RecordWriteBack(writeBackConflict)
	default:
		merged.Revision = res.Revision
		r.metrics.RecordWriteBack(writeBackWritten)
	}
}

func (r *Resolver) logDirectoryFailure(identifier string, err error) {
	switch {
	case errors.Is(err, directory.ErrBindFailed):
		log.Printf("[Resolver] Directory bind failed for %s: %v", identifier, err)
	case errors.Is(err, directory.ErrUserNotFound):
		log.Printf("[Resolver] %s not found in directory", identifier)
	case errors.Is(err, directory.ErrQueryFailed):
		log.Printf("[Resolver] Directory query failed for %s: %v", identifier, err)
	default:
		log.Printf("[Resolver] Directory lookup failed for %s: %v", identifier, err)
	}
}
