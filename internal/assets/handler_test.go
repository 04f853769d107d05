package assets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrine-backend/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg, err := Default("https://static.example.com")
	require.NoError(t, err)
	h := NewHandler(reg, logging.Discard())

	r := chi.NewRouter()
	r.Get("/assets", h.List)
	r.Get("/assets/{category}/{name}", h.Get)
	return r
}

func getPath(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerGet(t *testing.T) {
	rec := getPath(newTestRouter(t), "/assets/logos/primary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"category":"logos","name":"primary","url":"https://static.example.com/images/logos/logo-primary.svg"}`, rec.Body.String())
}

func TestHandlerGetResized(t *testing.T) {
	rec := getPath(newTestRouter(t), "/assets/hero/background?w=1200&q=70")
	require.Equal(t, http.StatusOK, rec.Code)

	var got AssetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://static.example.com/images/hero/hero-background.jpg?q=70&w=1200", got.URL)
}

func TestHandlerGetBadDimension(t *testing.T) {
	rec := getPath(newTestRouter(t), "/assets/hero/background?w=wide")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"w":"numeric"`)
}

func TestHandlerGetNotFound(t *testing.T) {
	rec := getPath(newTestRouter(t), "/assets/team/nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerList(t *testing.T) {
	rec := getPath(newTestRouter(t), "/assets")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"banners":{`)
}
