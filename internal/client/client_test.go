package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/session"
)

type fakeNavigator struct {
	path       string
	redirected []string
}

func (n *fakeNavigator) CurrentPath() string { return n.path }
func (n *fakeNavigator) Redirect(path string) { n.redirected = append(n.redirected, path) }

func newSession(t *testing.T, token string) *session.Store {
	t.Helper()
	s := session.New(session.NewMemoryPersistence())
	if token != "" {
		require.NoError(t, s.Login("123", "Budi", "FIELD", "DRIVER", token))
	}
	return s
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	c := New(srv.URL, newSession(t, "tok-123"), &fakeNavigator{path: "/app/home"})

	var out map[string]string
	require.NoError(t, c.Post(context.Background(), "/v1/transactions", map[string]int{"x": 1}, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "yes", out["ok"])
}

func TestDoCallerHeadersOverrideDefaults(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, newSession(t, ""), &fakeNavigator{path: "/app/home"})

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-ndjson")
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/v1/bulk", nil, nil, headers))
	assert.Equal(t, "application/x-ndjson", gotContentType)
}

func TestDoUnauthorizedRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tests := []struct {
		name         string
		currentPath  string
		wantRedirect string
		wantLogout   bool
	}{
		{"admin surface", "/admin/dashboard", "/admin/login", true},
		{"admin root", "/admin", "/admin/login", true},
		{"admin-like prefix is not admin", "/administrative", "/app/login", true},
		{"field surface", "/app/home", "/app/login", true},
		{"root path", "/", "/app/login", true},
		{"already on admin login", "/admin/login", "", false},
		{"already on field login", "/app/login", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newSession(t, "tok")
			nav := &fakeNavigator{path: tt.currentPath}
			c := New(srv.URL, sess, nav)

			err := c.Get(context.Background(), "/v1/stores", nil)
			require.ErrorIs(t, err, ErrUnauthorized)

			if tt.wantRedirect == "" {
				assert.Empty(t, nav.redirected)
			} else {
				assert.Equal(t, []string{tt.wantRedirect}, nav.redirected)
			}
			if tt.wantLogout {
				assert.Nil(t, sess.User())
				assert.Empty(t, sess.Token())
			} else {
				assert.NotNil(t, sess.User(), "identity must survive a 401 on the login page itself")
			}
		})
	}
}

func TestDoSurfacesServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid input"})
	}))
	defer srv.Close()

	c := New(srv.URL, newSession(t, ""), &fakeNavigator{path: "/app/home"})

	err := c.Post(context.Background(), "/v1/transactions", nil, nil)
	require.EqualError(t, err, "Invalid input")
}

func TestDoFallsBackToStatusMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream broke</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, newSession(t, ""), &fakeNavigator{path: "/app/home"})

	err := c.Get(context.Background(), "/v1/stores", nil)
	require.EqualError(t, err, "request failed with status 502")
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New("", newSession(t, ""), &fakeNavigator{})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
