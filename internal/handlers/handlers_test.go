package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tepidprint/tepid/internal/middleware"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/services"
	"github.com/tepidprint/tepid/internal/session"
)

type fakeAuthenticator struct {
	users map[string]*models.User
	err   error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, identifier, password string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[identifier]
	if !ok || password != "secret" {
		return nil, services.ErrInvalidCredentials
	}
	return u.Clone(), nil
}

type fakeUserService struct {
	users       map[string]*models.User
	suggestions []*models.User
	suggestErr  error
	updateErr   error
	lastLimit   int
}

func (f *fakeUserService) GetUser(_ context.Context, identifier string) (*models.User, error) {
	if u, ok := f.users[identifier]; ok {
		return u.Clone(), nil
	}
	return nil, services.ErrUserNotFound
}

func (f *fakeUserService) Suggest(ctx context.Context, _ string, limit int) *services.Future[[]*models.User] {
	f.lastLimit = limit
	return services.Go(ctx, func(context.Context) ([]*models.User, error) {
		return f.suggestions, f.suggestErr
	})
}

func (f *fakeUserService) SetExchangeStudent(ctx context.Context, identifier string, exchange bool) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, err := f.GetUser(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if exchange {
		u.Role = models.RoleUser
	}
	return u, nil
}

func (f *fakeUserService) SetNickname(ctx context.Context, shortID, nickname string) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, err := f.GetUser(ctx, shortID)
	if err != nil {
		return nil, err
	}
	u.Nickname = nickname
	return u, nil
}

func (f *fakeUserService) SetColorPrinting(ctx context.Context, shortID string, enabled bool) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, err := f.GetUser(ctx, shortID)
	if err != nil {
		return nil, err
	}
	u.ColorPrinting = enabled
	return u, nil
}

type testServer struct {
	router   *gin.Engine
	sessions *session.Manager
	auth     *fakeAuthenticator
	users    *fakeUserService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	people := map[string]*models.User{
		"jdoe3":  {ShortID: "jdoe3", LongID: "john.doe@example.edu", Role: models.RoleUser},
		"asmith": {ShortID: "asmith", Role: models.RoleCTFer},
		"boss":   {ShortID: "boss", Role: models.RoleElder},
	}
	ts := &testServer{
		sessions: session.NewManager(session.NewMemoryBackend(), 24),
		auth:     &fakeAuthenticator{users: people},
		users:    &fakeUserService{users: people},
	}

	sh := NewSessionHandler(ts.auth, ts.sessions)
	uh := NewUserHandler(ts.users)

	r := gin.New()
	r.Use(middleware.SessionAuth(ts.sessions))
	r.POST("/sessions", sh.Create)
	r.GET("/sessions/:token", sh.Get)
	r.DELETE("/sessions/:token", sh.Delete)

	users := r.Group("/users", middleware.RequireSession())
	users.GET("/autosuggest/:like", middleware.RequireRole(models.RoleCTFer), uh.Autosuggest)
	users.GET("/:identifier", uh.Get)
	users.POST("/:identifier/refresh", middleware.RequireRole(models.RoleElder), uh.Refresh)
	users.PUT("/:identifier/exchange", middleware.RequireRole(models.RoleElder), uh.SetExchange)
	owner := middleware.RequireOwnerOrRole("identifier", models.RoleElder)
	users.PUT("/:identifier/nickname", owner, uh.SetNickname)
	users.PUT("/:identifier/color", owner, uh.SetColor)

	ts.router = r
	return ts
}

func (ts *testServer) login(t *testing.T, shortID string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/sessions", "", fmt.Sprintf(`{"username":%q,"password":"secret"}`, shortID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return w.Header().Get(middleware.HeaderSession)
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestSessionHandler_Create(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/sessions", "", `{"username":"jdoe3","password":"secret","ttl_hours":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	s := decode[models.Session](t, w)
	assert.Equal(t, "jdoe3", s.ShortID)
	assert.Equal(t, models.RoleUser, s.Role)
	assert.True(t, s.Persistent)
	assert.Equal(t, s.Token, w.Header().Get(middleware.HeaderSession))
	assert.Equal(t, models.RoleUser, w.Header().Get(middleware.HeaderRole))
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), s.ExpiresAt, time.Minute)
}

func TestSessionHandler_CreateNonPersistent(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/sessions", "", `{"username":"jdoe3","password":"secret","persistent":false}`)
	require.Equal(t, http.StatusCreated, w.Code)
	s := decode[models.Session](t, w)
	assert.False(t, s.Persistent)

	stored, err := ts.sessions.Get(context.Background(), s.Token)
	require.NoError(t, err)
	assert.False(t, stored.Persistent)
}

func TestSessionHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		authErr error
		want    int
	}{
		{name: "missing password", body: `{"username":"jdoe3"}`, want: http.StatusBadRequest},
		{name: "negative ttl", body: `{"username":"jdoe3","password":"secret","ttl_hours":-1}`, want: http.StatusBadRequest},
		{name: "wrong password", body: `{"username":"jdoe3","password":"nope"}`, want: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"secret"}`, want: http.StatusUnauthorized},
		{
			name:    "identity mismatch",
			body:    `{"username":"jdoe3","password":"secret"}`,
			authErr: fmt.Errorf("%w: jdoe3 vs jdoe4", services.ErrIdentityMismatch),
			want:    http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.auth.err = tt.authErr
			w := ts.do(t, http.MethodPost, "/sessions", "", tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Empty(t, w.Header().Get(middleware.HeaderSession))
		})
	}
}

func TestSessionHandler_GetAndDelete(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "jdoe3")

	w := ts.do(t, http.MethodGet, "/sessions/"+token, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jdoe3", decode[models.Session](t, w).ShortID)

	w = ts.do(t, http.MethodDelete, "/sessions/"+token, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/sessions/"+token, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodDelete, "/sessions/"+token, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserHandler_Get(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "jdoe3")

	w := ts.do(t, http.MethodGet, "/users/asmith", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asmith", decode[models.User](t, w).ShortID)

	w = ts.do(t, http.MethodGet, "/users/ghost", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/users/asmith", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_RefreshRequiresElder(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/users/jdoe3/refresh", ts.login(t, "asmith"), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodPost, "/users/jdoe3/refresh", ts.login(t, "boss"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jdoe3", decode[models.User](t, w).ShortID)
}

func TestUserHandler_Autosuggest(t *testing.T) {
	ts := newTestServer(t)
	ts.users.suggestions = []*models.User{{ShortID: "jdoe3"}, {ShortID: "jdoe4"}}

	w := ts.do(t, http.MethodGet, "/users/autosuggest/jdo?limit=2", ts.login(t, "jdoe3"), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	ctfer := ts.login(t, "asmith")
	w = ts.do(t, http.MethodGet, "/users/autosuggest/jdo?limit=2", ctfer, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.User](t, w), 2)
	assert.Equal(t, 2, ts.users.lastLimit)

	w = ts.do(t, http.MethodGet, "/users/autosuggest/jdo?limit=abc", ctfer, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.users.suggestErr = errors.New("ldap: connection reset")
	w = ts.do(t, http.MethodGet, "/users/autosuggest/jdo", ctfer, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, ts.users.lastLimit)
}

func TestUserHandler_SetExchange(t *testing.T) {
	ts := newTestServer(t)
	elder := ts.login(t, "boss")

	w := ts.do(t, http.MethodPut, "/users/jdoe3/exchange", elder, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPut, "/users/jdoe3/exchange", elder, `{"exchange":true}`)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.users.updateErr = services.ErrDirectoryDisabled
	w = ts.do(t, http.MethodPut, "/users/jdoe3/exchange", elder, `{"exchange":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUserHandler_Preferences(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.login(t, "jdoe3")
	other := ts.login(t, "asmith")

	w := ts.do(t, http.MethodPut, "/users/jdoe3/nickname", owner, `{"nickname":"JD"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "JD", decode[models.User](t, w).Nickname)

	w = ts.do(t, http.MethodPut, "/users/jdoe3/nickname", other, `{"nickname":"nope"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodPut, "/users/jdoe3/color", owner, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPut, "/users/jdoe3/color", owner, `{"enabled":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.User](t, w).ColorPrinting)

	ts.users.updateErr = services.ErrUpdateConflict
	w = ts.do(t, http.MethodPut, "/users/jdoe3/color", owner, `{"enabled":false}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
