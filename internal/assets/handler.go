package assets

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitrine-backend/internal/middleware"
	"vitrine-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	registry *Registry
	log      *slog.Logger
}

func NewHandler(registry *Registry, log *slog.Logger) *Handler {
	return &Handler{registry: registry, log: log}
}

type AssetResponse struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, h.registry.All())
}

// Get resolves one asset. Optional w, h and q query parameters produce a
// resized URL.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	category := chi.URLParam(r, "category")
	name := chi.URLParam(r, "name")

	u, ok := h.registry.Lookup(category, name)
	if !ok {
		log.Warn("assets get: not found", slog.String("category", category), slog.String("name", name))
		transport.WriteError(w, http.StatusNotFound, "asset not found", nil)
		return
	}

	details := map[string]string{}
	dims := make(map[string]int, 3)
	for _, key := range []string{"w", "h", "q"} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			details[key] = "numeric"
			continue
		}
		dims[key] = n
	}
	if len(details) > 0 {
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	if len(dims) > 0 {
		resized, err := ResizeURL(u, dims["w"], dims["h"], dims["q"])
		if err != nil {
			log.Error("assets get: resize failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "resize error", nil)
			return
		}
		u = resized
	}

	transport.WriteJSON(w, http.StatusOK, AssetResponse{Category: category, Name: name, URL: u})
}
