package casestudies

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/httpx"
	"vitrine-backend/internal/middleware"
	"vitrine-backend/internal/transport"
	"vitrine-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// ListCacheKey holds the cached public listing. Anything that writes to the
// collection outside this handler must delete it.
const ListCacheKey = "case_studies:list"

type Handler struct {
	service  *Service
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:  service,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	payload, hit, err := cache.Remember(ctx, h.cache, ListCacheKey, h.cacheTTL, func(ctx context.Context) (interface{}, error) {
		items, err := h.service.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"items": items}, nil
	})
	if err != nil {
		log.Error("case studies list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("case studies list: ok", slog.Bool("cache_hit", hit))
	transport.WriteRaw(w, http.StatusOK, payload)
}

func (h *Handler) PublicGetByID(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		log.Error("case studies get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if item == nil {
		log.Warn("case studies get: not found", slog.String("case_study_id", id))
		transport.WriteError(w, http.StatusNotFound, "case study not found", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		if ve, ok := httpx.TypeError(err); ok {
			transport.WriteValidationError(w, ve)
			return
		}
		log.Warn("admin case studies create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	id, err := h.service.Create(ctx, req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			log.Warn("admin case studies create: validation error", slog.Any("fields", ve.FieldNames()))
			transport.WriteValidationError(w, ve)
			return
		}
		log.Error("admin case studies create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if err := h.cache.Delete(ctx, ListCacheKey); err != nil {
		log.Warn("admin case studies create: cache invalidation failed", slog.String("error", err.Error()))
	}

	log.Info("admin case studies create: ok", slog.String("case_study_id", id))
	transport.WriteCreated(w, id)
}
