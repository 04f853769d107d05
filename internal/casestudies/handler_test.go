package casestudies

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vitrine-backend/internal/logging"
	"vitrine-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)
	h := NewHandler(svc, nil, time.Minute, logging.Discard())

	r := chi.NewRouter()
	r.Get("/case-studies", h.PublicList)
	r.Get("/case-studies/{id}", h.PublicGetByID)
	r.Post("/admin/case-studies", h.AdminCreate)
	return r
}

func TestAdminCreateThenGet(t *testing.T) {
	router := newTestRouter()
	body := `{"title":"Northwind","client":"Northwind","industry":"Logistics","challenge":"c","solution":"s",
		"results":["r1"],"metrics":[{"label":"On-time","value":"98%"}]}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/case-studies", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/case-studies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"metrics":[{"label":"On-time","value":"98%"}]`)
}

func TestAdminCreateMetricsWrongType(t *testing.T) {
	router := newTestRouter()
	body := `{"title":"x","client":"x","industry":"x","challenge":"c","solution":"s","metrics":["98%"]}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/case-studies", strings.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"metrics":"type"`)
}

func TestPublicGetByIDNotFound(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/case-studies/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
