package directory

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/tepidprint/tepid/internal/core"

	"github.com/go-ldap/ldap/v3"
)

// Compile-time interface check.
var _ core.DirectoryClient = (*LDAPClient)(nil)

// LDAPClient dials a fresh connection for every bind. Connections are never
// pooled.
type LDAPClient struct {
	url             string
	principalPrefix string
	connectTimeout  time.Duration
	readTimeout     time.Duration
}

// NewLDAPClient creates a client for url. principalPrefix is prepended to
// every bind principal.
func NewLDAPClient(
	url, principalPrefix string,
	connectTimeout, readTimeout time.Duration,
) *LDAPClient {
	return &LDAPClient{
		url:             url,
		principalPrefix: principalPrefix,
		connectTimeout:  connectTimeout,
		readTimeout:     readTimeout,
	}
}

// Bind dials the directory and binds with cred. Empty secrets are refused
// before dialing so they can never turn into an anonymous bind.
func (c *LDAPClient) Bind(ctx context.Context, cred core.Credential) (core.DirectoryConn, error) {
	if cred.Principal == "" || cred.Secret == "" {
		return nil, fmt.Errorf("%w: empty principal or secret", ErrBindFailed)
	}

	dialer := &net.Dialer{Timeout: c.connectTimeout}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < c.connectTimeout {
		dialer.Deadline = deadline
	}

	conn, err := ldap.DialURL(c.url, ldap.DialWithDialer(dialer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}
	conn.SetTimeout(c.readTimeout)

	if err := conn.Bind(c.principalPrefix+cred.Principal, cred.Secret); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}

	return &ldapConn{conn: conn}, nil
}

type ldapConn struct {
	conn *ldap.Conn
}

func (c *ldapConn) Search(ctx context.Context, req core.SearchRequest) (core.EntryCursor, error) {
	searchRequest := ldap.NewSearchRequest(
		req.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		req.SizeLimit,
		0,
		false,
		req.Filter,
		req.Attributes,
		nil,
	)

	ctx, cancel := context.WithCancel(ctx)
	resp := c.conn.SearchAsync(ctx, searchRequest, 16)
	return &ldapCursor{resp: resp, cancel: cancel}, nil
}

func (c *ldapConn) ModifyMember(ctx context.Context, groupDN, memberDN string, add bool) error {
	req := ldap.NewModifyRequest(groupDN, nil)
	if add {
		req.Add("member", []string{memberDN})
	} else {
		req.Delete("member", []string{memberDN})
	}
	if err := c.conn.Modify(req); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return nil
}

func (c *ldapConn) Close() error {
	return c.conn.Close()
}

// ldapCursor adapts an asynchronous search response. Closing it cancels the
// search, which abandons any entries the server has not sent yet.
type ldapCursor struct {
	resp    ldap.Response
	cancel  context.CancelFunc
	current core.DirectoryEntry
}

func (c *ldapCursor) Next() bool {
	for c.resp.Next() {
		entry := c.resp.Entry()
		if entry == nil {
			// referral or control-only message
			continue
		}
		c.current = toDirectoryEntry(entry)
		return true
	}
	return false
}

func (c *ldapCursor) Entry() core.DirectoryEntry {
	return c.current
}

func (c *ldapCursor) Err() error {
	return c.resp.Err()
}

func (c *ldapCursor) Close() error {
	c.cancel()
	return nil
}

func toDirectoryEntry(e *ldap.Entry) core.DirectoryEntry {
	attrs := make(core.AttributeSet, len(e.Attributes))
	for _, a := range e.Attributes {
		name := strings.ToLower(a.Name)
		attrs[name] = append(attrs[name], a.Values...)
	}
	return core.DirectoryEntry{DN: e.DN, Attributes: attrs}
}
