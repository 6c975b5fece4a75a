package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mansionmarket-backend/internal/auth"

	"github.com/stretchr/testify/require"
)

func protectedRoute(t *testing.T, manager *auth.Manager, roles ...string) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	return RequireRole(manager, roles...)(next)
}

func TestRequireRoleMissingToken(t *testing.T) {
	m := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	handler := protectedRoute(t, m, "admin")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleInvalidToken(t *testing.T) {
	m := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	handler := protectedRoute(t, m, "admin")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleWrongRole(t *testing.T) {
	m := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	handler := protectedRoute(t, m, "superadmin")

	token, err := m.NewAccessToken("user-123", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	m := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	handler := protectedRoute(t, m, "admin", "superadmin")

	token, err := m.NewAccessToken("user-123", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleUnconfiguredManager(t *testing.T) {
	handler := RequireRole(nil, "admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimiterFixedWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	require.True(t, rl.Allow("1.2.3.4:/api/newsletter"))
	require.True(t, rl.Allow("1.2.3.4:/api/newsletter"))
	require.False(t, rl.Allow("1.2.3.4:/api/newsletter"))

	// Separate clients get their own window.
	require.True(t, rl.Allow("5.6.7.8:/api/newsletter"))
}
