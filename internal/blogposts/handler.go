package blogposts

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
const ListCacheKey = "blog_posts:list"

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
		posts, err := h.service.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"items": posts}, nil
	})
	if err != nil {
		log.Error("blog posts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog posts list: ok", slog.Bool("cache_hit", hit))
	transport.WriteRaw(w, http.StatusOK, payload)
}

func (h *Handler) PublicGetByID(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, err := h.service.GetByID(ctx, id)
	if err != nil {
		log.Error("blog posts get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if post == nil {
		log.Warn("blog posts get: not found", slog.String("post_id", id))
		transport.WriteError(w, http.StatusNotFound, "blog post not found", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		if ve, ok := httpx.TypeError(err); ok {
			transport.WriteValidationError(w, ve)
			return
		}
		log.Warn("admin blog posts create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	id, err := h.service.Create(ctx, req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			log.Warn("admin blog posts create: validation error", slog.Any("fields", ve.FieldNames()))
			transport.WriteValidationError(w, ve)
			return
		}
		log.Error("admin blog posts create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if err := h.cache.Delete(ctx, ListCacheKey); err != nil {
		log.Warn("admin blog posts create: cache invalidation failed", slog.String("error", err.Error()))
	}

	log.Info("admin blog posts create: ok", slog.String("post_id", id))
	transport.WriteCreated(w, id)
}
