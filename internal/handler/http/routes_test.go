package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoutedServer serves Init() with auth accepting "Bearer valid" as user 5.
func newRoutedServer(t *testing.T) *httptest.Server {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token == "valid" {
				return models.Token{UserID: 5}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 5, Login: u.Login}, nil
		},
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 6, Login: u.Login}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{SignedString: "valid"}, nil
		},
	}
	snapshots := &mockSnapshotService{
		getFn: func(context.Context, int64) (models.Snapshot, error) { return testSnapshot, nil },
		putFn: func(context.Context, int64, models.Snapshot) error { return nil },
	}

	srv := httptest.NewServer(newTestHandlerWith(auth, snapshots).Init())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, apiKey, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestInit_PublicRoutes(t *testing.T) {
	srv := newRoutedServer(t)
	creds := `{"login":"alice","password":"pw"}`

	resp := do(t, srv, http.MethodGet, "/api/ping", testAPIKey, "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ping models.PingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ping))
	assert.Equal(t, "ok", ping.Status)
	assert.Positive(t, ping.Time)

	resp = do(t, srv, http.MethodPost, "/api/auth/login", testAPIKey, "", creds)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer valid", resp.Header.Get("Authorization"))

	resp = do(t, srv, http.MethodPost, "/api/auth/register", testAPIKey, "", creds)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestInit_RequiresAPIKey(t *testing.T) {
	srv := newRoutedServer(t)

	for _, path := range []string{"/api/ping", "/api/auth/login", "/api/users/5/snapshot"} {
		resp := do(t, srv, http.MethodGet, path, "wrong", "valid", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, app.MsgInvalidAPIKey, body.Error)
	}
}

func TestInit_SnapshotRoutes(t *testing.T) {
	srv := newRoutedServer(t)

	resp := do(t, srv, http.MethodGet, "/api/users/5/snapshot", testAPIKey, "valid", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, testSnapshot, got)

	body, err := json.Marshal(testSnapshot)
	require.NoError(t, err)
	resp = do(t, srv, http.MethodPut, "/api/users/5/snapshot", testAPIKey, "valid", string(body))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestInit_SnapshotRoutes_Rejections(t *testing.T) {
	srv := newRoutedServer(t)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{name: "no token", path: "/api/users/5/snapshot", wantStatus: http.StatusUnauthorized},
		{name: "bad token", path: "/api/users/5/snapshot", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "other user", path: "/api/users/6/snapshot", token: "valid", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, srv, http.MethodGet, tt.path, testAPIKey, tt.token, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestInit_UnknownAndWrongMethod_Return404(t *testing.T) {
	srv := newRoutedServer(t)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/unknown"},
		{http.MethodDelete, "/api/users/5/snapshot"},
		{http.MethodPost, "/api/ping"},
		{http.MethodGet, "/api/auth/login"},
	}
	for _, c := range cases {
		resp := do(t, srv, c.method, c.path, testAPIKey, "valid", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, c.method+" "+c.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	srv := newRoutedServer(t)

	resp := do(t, srv, http.MethodGet, "/api/ping", testAPIKey, "", "")
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/ping", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("X-Trace-ID", "trace-123")
	resp2, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "trace-123", resp2.Header.Get("X-Trace-ID"))
}
