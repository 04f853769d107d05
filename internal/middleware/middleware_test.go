package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitrine-backend/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiterWindow(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
	assert.True(t, rl.Allow("other"))

	clock = clock.Add(time.Minute + time.Second)
	assert.True(t, rl.Allow("k"))
}

func TestRateLimiterMiddleware(t *testing.T) {
	h := NewRateLimiter(1, time.Minute).Middleware(okHandler)

	serve := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact-requests", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.2"))
}

func TestRequestIDGeneratedAndReused(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "<script>", seen)
}

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := RequestID()(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"request_id":`)
	assert.Contains(t, buf.String(), `"path":"/brew"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestCORS(t *testing.T) {
	h := CORS("https://site.example, https://preview.site.example/")(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://site.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://site.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://preview.site.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://preview.site.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func testManager() *auth.Manager {
	return &auth.Manager{Secret: []byte("k"), AccessTTL: time.Minute, RefreshTTL: time.Hour, Issuer: "vitrine-test"}
}

func withCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: token})
	}
	return req
}

func TestAdminAuth(t *testing.T) {
	m := testManager()
	h := AdminAuth("key", m)(okHandler)

	serve := func(req *http.Request) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(withCookie("")))

	req := withCookie("")
	req.Header.Set("X-Admin-Key", "key")
	assert.Equal(t, http.StatusOK, serve(req))

	req = withCookie("")
	req.Header.Set("X-Admin-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(req))

	admin, err := m.NewAccessToken(auth.Session{UserID: "a", Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, serve(withCookie(admin)))

	member, err := m.NewAccessToken(auth.Session{UserID: "m", Role: auth.RoleMember})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(withCookie(member)))

	refresh, err := m.NewRefreshToken(auth.Session{UserID: "a", Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(withCookie(refresh)))
}

func TestValidAdminKey(t *testing.T) {
	assert.True(t, validAdminKey("key", "key"))
	assert.False(t, validAdminKey("ke", "key"))
	assert.False(t, validAdminKey("keyy", "key"))
	assert.False(t, validAdminKey("", "key"))
	assert.False(t, validAdminKey("", ""))
}

func TestAdminAuthKeyOnly(t *testing.T) {
	h := AdminAuth("key", nil)(okHandler)

	req := withCookie("")
	req.Header.Set("X-Admin-Key", "KEY")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = withCookie("")
	req.Header.Set("X-Admin-Key", "key")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthNotConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminAuth("", nil)(okHandler).ServeHTTP(rec, withCookie(""))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthenticateSetsClaims(t *testing.T) {
	m := testManager()
	var claims *auth.Claims
	h := Authenticate(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = ClaimsFromContext(r.Context())
	}))

	token, err := m.NewAccessToken(auth.Session{UserID: "u1", Email: "u@co.com", Role: auth.RoleUser})
	require.NoError(t, err)
	h.ServeHTTP(httptest.NewRecorder(), withCookie(token))
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.Subject)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withCookie("garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
