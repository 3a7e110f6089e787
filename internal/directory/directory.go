package directory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"
)

// Compile-time interface check.
var _ core.UserDirectory = (*Directory)(nil)

// Options configures where and as whom Directory searches.
type Options struct {
	SearchBase string
	// Service is the credential used when a caller does not supply one.
	Service core.Credential
	// ExchangeGroupLocation is the container DN of the exchange student
	// groups; groups are named by Policy.CurrentExchangeGroup.
	ExchangeGroupLocation string
}

// Directory implements core.UserDirectory on top of a DirectoryClient.
type Directory struct {
	client     core.DirectoryClient
	normalizer *Normalizer
	policy     RolePolicy
	opts       Options
	metrics    core.Recorder
}

// New creates a Directory. policy supplies both the role function used by
// the normalizer and the exchange student group naming.
func New(
	client core.DirectoryClient,
	policy RolePolicy,
	opts Options,
	recorder core.Recorder,
) *Directory {
	return &Directory{
		client:     client,
		normalizer: NewNormalizer(policy.Role),
		policy:     policy,
		opts:       opts,
		metrics:    recorder,
	}
}

// FindByShortID looks a user up by sAMAccountName.
func (d *Directory) FindByShortID(
	ctx context.Context,
	shortID string,
	cred *core.Credential,
) (*models.User, error) {
	entry, err := d.findEntry(ctx, "find_short_id", userFilter(attrShortID, shortID), cred)
	if err != nil {
		return nil, err
	}
	return d.normalizer.Normalize(entry.Attributes), nil
}

// FindByLongID looks a user up by userPrincipalName. longID must already
// carry its domain.
func (d *Directory) FindByLongID(
	ctx context.Context,
	longID string,
	cred *core.Credential,
) (*models.User, error) {
	entry, err := d.findEntry(ctx, "find_long_id", userFilter(attrLongID, longID), cred)
	if err != nil {
		return nil, err
	}
	return d.normalizer.Normalize(entry.Attributes), nil
}

// Suggest returns up to limit users whose short or long id starts with
// like. Only users with a dotted long id (people, not service accounts)
// are kept.
func (d *Directory) Suggest(ctx context.Context, like string, limit int) ([]*models.User, error) {
	if limit <= 0 {
		return []*models.User{}, nil
	}

	start := time.Now()
	conn, err := d.bind(ctx, nil)
	if err != nil {
		d.metrics.RecordDirectoryQuery("suggest", false, time.Since(start))
		return nil, err
	}
	defer conn.Close()

	cursor, err := conn.Search(ctx, core.SearchRequest{
		BaseDN:     d.opts.SearchBase,
		Filter:     suggestFilter(like),
		Attributes: userAttributes,
	})
	if err != nil {
		d.metrics.RecordDirectoryQuery("suggest", false, time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer cursor.Close()

	out := make([]*models.User, 0, limit)
	for len(out) < limit && cursor.Next() {
		u := d.normalizer.Normalize(cursor.Entry().Attributes)
		if strings.Index(u.LongIDLocalPart(), ".") > 0 {
			out = append(out, u)
		}
	}
	if len(out) < limit {
		if err := cursor.Err(); err != nil {
			d.metrics.RecordDirectoryQuery("suggest", false, time.Since(start))
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}

	d.metrics.RecordDirectoryQuery("suggest", true, time.Since(start))
	return out, nil
}

// SetExchangeStudent adds the user to (or removes it from) the current
// exchange student group, using the service credential.
func (d *Directory) SetExchangeStudent(ctx context.Context, shortID string, exchange bool) error {
	group := d.policy.CurrentExchangeGroup()
	if group == "" || d.opts.ExchangeGroupLocation == "" {
		return errors.New("directory: exchange student group is not configured")
	}

	entry, err := d.findEntry(ctx, "find_short_id", userFilter(attrShortID, shortID), nil)
	if err != nil {
		return err
	}

	start := time.Now()
	conn, err := d.bind(ctx, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	groupDN := "CN=" + group + "," + d.opts.ExchangeGroupLocation
	err = conn.ModifyMember(ctx, groupDN, entry.DN, exchange)
	d.metrics.RecordDirectoryQuery("modify_member", err == nil, time.Since(start))
	if err != nil {
		log.Printf("[Directory] Failed to update exchange status of %s: %v", shortID, err)
		return err
	}

	if exchange {
		log.Printf("[Directory] Added %s to exchange students (%s)", shortID, group)
	} else {
		log.Printf("[Directory] Removed %s from exchange students (%s)", shortID, group)
	}
	return nil
}

// VerifyCredential binds with cred and closes the connection.
func (d *Directory) VerifyCredential(ctx context.Context, cred core.Credential) error {
	start := time.Now()
	conn, err := d.client.Bind(ctx, cred)
	d.metrics.RecordDirectoryQuery("bind", err == nil, time.Since(start))
	if err != nil {
		return err
	}
	return conn.Close()
}

func (d *Directory) bind(ctx context.Context, cred *core.Credential) (core.DirectoryConn, error) {
	c := d.opts.Service
	if cred != nil {
		c = *cred
	}
	conn, err := d.client.Bind(ctx, c)
	if err != nil {
		log.Printf("[Directory] Failed to bind as %q: %v", c.Principal, err)
		return nil, err
	}
	return conn, nil
}

// findEntry returns the first entry matching filter.
func (d *Directory) findEntry(
	ctx context.Context,
	operation, filter string,
	cred *core.Credential,
) (core.DirectoryEntry, error) {
	start := time.Now()

	conn, err := d.bind(ctx, cred)
	if err != nil {
		d.metrics.RecordDirectoryQuery(operation, false, time.Since(start))
		return core.DirectoryEntry{}, err
	}
	defer conn.Close()

	cursor, err := conn.Search(ctx, core.SearchRequest{
		BaseDN:     d.opts.SearchBase,
		Filter:     filter,
		Attributes: userAttributes,
	})
	if err != nil {
		d.metrics.RecordDirectoryQuery(operation, false, time.Since(start))
		log.Printf("[Directory] Search %s failed: %v", filter, err)
		return core.DirectoryEntry{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer cursor.Close()

	if !cursor.Next() {
		if err := cursor.Err(); err != nil {
			d.metrics.RecordDirectoryQuery(operation, false, time.Since(start))
			log.Printf("[Directory] Search %s failed: %v", filter, err)
			return core.DirectoryEntry{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		d.metrics.RecordDirectoryQuery(operation, true, time.Since(start))
		return core.DirectoryEntry{}, ErrUserNotFound
	}

	d.metrics.RecordDirectoryQuery(operation, true, time.Since(start))
	return cursor.Entry(), nil
}
