package contacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vitrine-backend/internal/logging"
	"vitrine-backend/internal/transport"
	"vitrine-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (http.Handler, *MemoryRepository) {
	repo := NewMemoryRepository()
	h := NewHandler(NewService(repo, validation.New(), nil, nil), logging.Discard())

	r := chi.NewRouter()
	r.Post("/contact-requests", h.Create)
	r.Get("/admin/contact-requests", h.AdminList)
	r.Get("/admin/contact-requests/{id}", h.AdminGetByID)
	return r, repo
}

func post(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCallbackForm(t *testing.T) {
	router, repo := newTestRouter()

	rec := post(t, router, `{"name":"Jane Doe","email":"jane@co.com","phone":"+15551234567","message":"Call me Tuesday","requestType":"callback"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created transport.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, StatusNew, got.Status)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@co.com", got.Email)
	assert.Equal(t, "+15551234567", got.Phone)
	assert.Equal(t, "Call me Tuesday", got.Message)
	assert.Equal(t, TypeCallback, got.RequestType)
}

func TestCreateCallbackFormWithoutEmail(t *testing.T) {
	router, repo := newTestRouter()

	rec := post(t, router, `{"name":"Jane Doe","phone":"+15551234567","message":"Call me Tuesday","requestType":"callback"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp transport.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation error", resp.Error)
	assert.Equal(t, "required", resp.Details["email"])
	assert.Equal(t, 0, repo.items.Len())
}

func TestCreateIgnoresForgedStatus(t *testing.T) {
	router, repo := newTestRouter()

	rec := post(t, router, `{"name":"Eve","email":"eve@co.com","message":"hi","requestType":"support","status":"resolved"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, StatusNew, items[0].Status)
}

func TestCreateWrongPrimitiveType(t *testing.T) {
	router, repo := newTestRouter()

	rec := post(t, router, `{"name":"Jane","email":"jane@co.com","message":42,"requestType":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp transport.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "type", resp.Details["message"])
	assert.Equal(t, 0, repo.items.Len())
}

func TestCreateMalformedJSON(t *testing.T) {
	router, _ := newTestRouter()

	rec := post(t, router, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
}

func TestAdminListAndGet(t *testing.T) {
	router, _ := newTestRouter()
	for _, name := range []string{"A", "B"} {
		rec := post(t, router, `{"name":"`+name+`","email":"x@co.com","message":"m","requestType":"other"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contact-requests", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []ContactRequest `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "B", list.Items[0].Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contact-requests/"+list.Items[1].ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"A"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contact-requests/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
