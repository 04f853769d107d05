package contacts

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vitrine-backend/internal/httpx"
	"vitrine-backend/internal/middleware"
	"vitrine-backend/internal/transport"
	"vitrine-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Create handles the public contact and callback forms. Unknown keys in the
// body are dropped, so a client cannot choose the status of its request.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSONLenient(r.Body, &req); err != nil {
		if ve, ok := httpx.TypeError(err); ok {
			log.Warn("contact create: type mismatch", slog.String("fields", ve.Error()))
			transport.WriteValidationError(w, ve)
			return
		}
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			log.Warn("contact create: validation error", slog.Any("fields", ve.FieldNames()))
			transport.WriteValidationError(w, ve)
			return
		}
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	go func(created ContactRequest) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyStaff(notifyCtx, created); err != nil {
			h.log.Warn("contact create: staff notification failed",
				slog.String("contact_id", created.ID),
				slog.String("error", err.Error()),
			)
		}
	}(item)

	log.Info("contact create: stored", slog.String("contact_id", item.ID), slog.String("request_type", item.RequestType))
	transport.WriteCreated(w, item.ID)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("admin contact list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contact list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) AdminGetByID(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		log.Error("admin contact get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if item == nil {
		log.Warn("admin contact get: not found", slog.String("contact_id", id))
		transport.WriteError(w, http.StatusNotFound, "contact request not found", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}
