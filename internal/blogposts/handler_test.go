package blogposts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"vitrine-backend/internal/logging"
	"vitrine-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newTestRouter() (http.Handler, *memCache) {
	c := &memCache{data: map[string][]byte{}}
	h := NewHandler(NewService(NewMemoryRepository(), validation.New(), nil), c, time.Minute, logging.Discard())

	r := chi.NewRouter()
	r.Get("/blog-posts", h.PublicList)
	r.Get("/blog-posts/{id}", h.PublicGetByID)
	r.Post("/admin/blog-posts", h.AdminCreate)
	return r, c
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

const validPost = `{"title":"Hello","excerpt":"e","content":"c","author":"a","category":"News","published":true}`

func TestListIsCachedAndInvalidatedOnCreate(t *testing.T) {
	router, c := newTestRouter()

	rec := serve(router, http.MethodGet, "/blog-posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
	_, cached, _ := c.Get(context.Background(), ListCacheKey)
	require.True(t, cached)

	rec = serve(router, http.MethodPost, "/admin/blog-posts", validPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	_, cached, _ = c.Get(context.Background(), ListCacheKey)
	assert.False(t, cached)

	rec = serve(router, http.MethodGet, "/blog-posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Hello"`)
}

func TestAdminCreateRejectsUnknownField(t *testing.T) {
	router, _ := newTestRouter()
	rec := serve(router, http.MethodPost, "/admin/blog-posts", `{"title":"x","slug":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
}

func TestAdminCreateWrongType(t *testing.T) {
	router, _ := newTestRouter()
	body := strings.Replace(validPost, `"published":true`, `"published":"yes"`, 1)
	rec := serve(router, http.MethodPost, "/admin/blog-posts", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"published":"type"`)
}

func TestAdminCreateValidation(t *testing.T) {
	router, _ := newTestRouter()
	rec := serve(router, http.MethodPost, "/admin/blog-posts", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"author":"required"`)
}

func TestPublicGetByIDNotFound(t *testing.T) {
	router, _ := newTestRouter()
	rec := serve(router, http.MethodGet, "/blog-posts/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
