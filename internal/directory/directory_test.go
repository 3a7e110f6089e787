package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var serviceCred = core.Credential{Principal: "svc-tepid", Secret: "svc-secret"}

type directoryFixture struct {
	client *mocks.MockDirectoryClient
	conn   *mocks.MockDirectoryConn
	cursor *mocks.MockEntryCursor
	dir    *Directory
}

func newDirectoryFixture(t *testing.T) *directoryFixture {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().RecordDirectoryQuery(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	f := &directoryFixture{
		client: mocks.NewMockDirectoryClient(ctrl),
		conn:   mocks.NewMockDirectoryConn(ctrl),
		cursor: mocks.NewMockEntryCursor(ctrl),
	}
	f.dir = New(f.client, RolePolicy{
		UsersGroups:       []string{"Printing-Users"},
		ExchangeGroupBase: "Exchange",
		Now:               func() time.Time { return time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC) },
	}, Options{
		SearchBase:            "DC=example,DC=edu",
		Service:               serviceCred,
		ExchangeGroupLocation: "OU=Groups,DC=example,DC=edu",
	}, recorder)
	return f
}

func jdoeEntry() core.DirectoryEntry {
	return core.DirectoryEntry{
		DN: "CN=John Doe,OU=People,DC=example,DC=edu",
		Attributes: core.AttributeSet{
			"samaccountname":    {"jdoe3"},
			"userprincipalname": {"John.Doe@example.edu"},
			"memberof":          {"CN=Printing-Users,OU=Groups,DC=example,DC=edu"},
		},
	}
}

func TestDirectory_FindByShortIDUsesServiceCredential(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.client.EXPECT().Bind(ctx, serviceCred).Return(f.conn, nil)
	f.conn.EXPECT().Search(ctx, core.SearchRequest{
		BaseDN:     "DC=example,DC=edu",
		Filter:     "(&(objectClass=user)(sAMAccountName=jdoe3))",
		Attributes: userAttributes,
	}).Return(f.cursor, nil)
	f.cursor.EXPECT().Next().Return(true)
	f.cursor.EXPECT().Entry().Return(jdoeEntry())
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().Close().Return(nil)

	u, err := f.dir.FindByShortID(ctx, "jdoe3", nil)

	require.NoError(t, err)
	assert.Equal(t, "jdoe3", u.ShortID)
	assert.Equal(t, "john.doe@example.edu", u.LongID)
	assert.Equal(t, "user", u.Role)
}

func TestDirectory_FindByLongIDUsesOwnerCredential(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()
	owner := &core.Credential{Principal: "john.doe", Secret: "pw"}

	f.client.EXPECT().Bind(ctx, *owner).Return(f.conn, nil)
	f.conn.EXPECT().Search(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req core.SearchRequest) (core.EntryCursor, error) {
			assert.Equal(t, "(&(objectClass=user)(userPrincipalName=john.doe@example.edu))", req.Filter)
			return f.cursor, nil
		})
	f.cursor.EXPECT().Next().Return(true)
	f.cursor.EXPECT().Entry().Return(jdoeEntry())
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().Close().Return(nil)

	u, err := f.dir.FindByLongID(ctx, "john.doe@example.edu", owner)

	require.NoError(t, err)
	assert.Equal(t, "jdoe3", u.ShortID)
}

func TestDirectory_FindNoEntry(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.client.EXPECT().Bind(ctx, serviceCred).Return(f.conn, nil)
	f.conn.EXPECT().Search(ctx, gomock.Any()).Return(f.cursor, nil)
	f.cursor.EXPECT().Next().Return(false)
	f.cursor.EXPECT().Err().Return(nil)
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().Close().Return(nil)

	_, err := f.dir.FindByShortID(ctx, "ghost", nil)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDirectory_FindSearchError(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.client.EXPECT().Bind(ctx, serviceCred).Return(f.conn, nil)
	f.conn.EXPECT().Search(ctx, gomock.Any()).Return(f.cursor, nil)
	f.cursor.EXPECT().Next().Return(false)
	f.cursor.EXPECT().Err().Return(errors.New("connection reset"))
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().Close().Return(nil)

	_, err := f.dir.FindByShortID(ctx, "jdoe3", nil)

	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestDirectory_FindBindFailure(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()
	owner := &core.Credential{Principal: "jdoe3", Secret: "wrong"}

	f.client.EXPECT().Bind(ctx, *owner).Return(nil, ErrBindFailed)

	_, err := f.dir.FindByShortID(ctx, "jdoe3", owner)

	assert.ErrorIs(t, err, ErrBindFailed)
}

func TestDirectory_SuggestKeepsDottedLongIDs(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	entries := []core.DirectoryEntry{
		{Attributes: core.AttributeSet{"samaccountname": {"jdoe3"}, "userprincipalname": {"john.doe@example.edu"}}},
		{Attributes: core.AttributeSet{"samaccountname": {"jsvc"}, "userprincipalname": {"jsvc@example.edu"}}},
		{Attributes: core.AttributeSet{"samaccountname": {"jane1"}, "userprincipalname": {"jane.roe@example.edu"}}},
		{Attributes: core.AttributeSet{"samaccountname": {"jim1"}, "userprincipalname": {"jim.poe@example.edu"}}},
	}
	i := -1

	f.client.EXPECT().Bind(ctx, serviceCred).Return(f.conn, nil)
	f.conn.EXPECT().Search(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req core.SearchRequest) (core.EntryCursor, error) {
			assert.Equal(t, "(&(objectClass=user)(|(userPrincipalName=j*)(samaccountname=j*)))", req.Filter)
			return f.cursor, nil
		})
	f.cursor.EXPECT().Next().DoAndReturn(func() bool {
		i++
		return i < len(entries)
	}).Times(3)
	f.cursor.EXPECT().Entry().DoAndReturn(func() core.DirectoryEntry { return entries[i] }).Times(3)
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().Close().Return(nil)

	users, err := f.dir.Suggest(ctx, "j", 2)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jdoe3", users[0].ShortID)
	assert.Equal(t, "jane1", users[1].ShortID)
}

func TestDirectory_SuggestZeroLimit(t *testing.T) {
	f := newDirectoryFixture(t)

	users, err := f.dir.Suggest(context.Background(), "j", 0)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDirectory_SetExchangeStudent(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()

	f.client.EXPECT().Bind(ctx, serviceCred).Return(f.conn, nil).Times(2)
	f.conn.EXPECT().Search(ctx, gomock.Any()).Return(f.cursor, nil)
	f.cursor.EXPECT().Next().Return(true)
	f.cursor.EXPECT().Entry().Return(jdoeEntry())
	f.cursor.EXPECT().Close().Return(nil)
	f.conn.EXPECT().ModifyMember(
		ctx,
		"CN=Exchange2024F,OU=Groups,DC=example,DC=edu",
		"CN=John Doe,OU=People,DC=example,DC=edu",
		true,
	).Return(nil)
	f.conn.EXPECT().Close().Return(nil).Times(2)

	require.NoError(t, f.dir.SetExchangeStudent(ctx, "jdoe3", true))
}

func TestDirectory_VerifyCredential(t *testing.T) {
	f := newDirectoryFixture(t)
	ctx := context.Background()
	cred := core.Credential{Principal: "jdoe3", Secret: "pw"}

	f.client.EXPECT().Bind(ctx, cred).Return(f.conn, nil)
	f.conn.EXPECT().Close().Return(nil)
	require.NoError(t, f.dir.VerifyCredential(ctx, cred))

	f.client.EXPECT().Bind(ctx, cred).Return(nil, ErrBindFailed)
	assert.ErrorIs(t, f.dir.VerifyCredential(ctx, cred), ErrBindFailed)
}
