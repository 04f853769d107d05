package signin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/httpx"
	"vitrine-backend/internal/middleware"
	"vitrine-backend/internal/notifications"
	"vitrine-backend/internal/transport"
	"vitrine-backend/internal/users"
	"vitrine-backend/internal/validation"
)

// RefreshCookiePath limits the refresh cookie to the auth routes.
const RefreshCookiePath = "/api/v1/auth"

type Handler struct {
	service      *Service
	cookieSecure bool
	log          *slog.Logger
}

func NewHandler(service *Service, cookieSecure bool, log *slog.Logger) *Handler {
	return &Handler{service: service, cookieSecure: cookieSecure, log: log}
}

type sessionResponse struct {
	User users.User `json:"user"`
}

func (h *Handler) RequestCode(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CodeRequest
	if !h.decode(w, r, log, "otp request", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	err := h.service.RequestCode(ctx, req)
	if err != nil {
		var delivery *notifications.DeliveryError
		switch {
		case errors.Is(err, ErrNotConfigured):
			log.Warn("otp request: not configured")
			transport.WriteError(w, http.StatusServiceUnavailable, "sign-in not configured", nil)
		case errors.As(err, &delivery):
			log.Error("otp request: delivery failed",
				slog.Int("status", delivery.StatusCode),
				slog.String("error", err.Error()),
			)
			transport.WriteError(w, http.StatusBadGateway, "could not send verification code", nil)
		default:
			if ve, ok := validation.AsError(err); ok {
				log.Warn("otp request: validation error", slog.Any("fields", ve.FieldNames()))
				transport.WriteValidationError(w, ve)
				return
			}
			log.Error("otp request: failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	log.Info("otp request: sent")
	transport.WriteJSON(w, http.StatusAccepted, StatusResponse{Status: "sent"})
}

func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req VerifyRequest
	if !h.decode(w, r, log, "otp verify", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	session, err := h.service.VerifyCode(ctx, req)
	if err != nil {
		h.writeSessionError(w, log, "otp verify", err)
		return
	}

	h.setAuthCookies(w, session)
	log.Info("otp verify: signed in", slog.String("user_id", session.User.ID))
	transport.WriteJSON(w, http.StatusOK, sessionResponse{User: session.User})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	cookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("auth refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	session, err := h.service.Refresh(ctx, cookie.Value)
	if err != nil {
		h.writeSessionError(w, log, "auth refresh", err)
		return
	}

	h.setAuthCookies(w, session)
	log.Info("auth refresh: ok", slog.String("user_id", session.User.ID))
	transport.WriteJSON(w, http.StatusOK, sessionResponse{User: session.User})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	h.clearAuthCookies(w)
	log.Info("auth logout: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, v interface{}) bool {
	if err := httpx.DecodeJSON(r.Body, v); err != nil {
		if ve, ok := httpx.TypeError(err); ok {
			log.Warn(op+": type mismatch", slog.String("fields", ve.Error()))
			transport.WriteValidationError(w, ve)
			return false
		}
		log.Warn(op + ": invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return false
	}
	return true
}

func (h *Handler) writeSessionError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrNotConfigured):
		log.Warn(op + ": not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "sign-in not configured", nil)
	case errors.Is(err, ErrInvalidCode):
		log.Warn(op + ": invalid code")
		transport.WriteError(w, http.StatusUnauthorized, "invalid or expired code", nil)
	case errors.Is(err, ErrInvalidToken):
		log.Warn(op + ": invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
	default:
		if ve, ok := validation.AsError(err); ok {
			log.Warn(op+": validation error", slog.Any("fields", ve.FieldNames()))
			transport.WriteValidationError(w, ve)
			return
		}
		log.Error(op+": failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
	}
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, session Session) {
	tokens := h.service.tokens
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookie,
		Value:    session.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokens.AccessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.RefreshCookie,
		Value:    session.RefreshToken,
		Path:     RefreshCookiePath,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokens.RefreshTTL.Seconds()),
	})
}

func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	expire := time.Now().Add(-1 * time.Hour)
	for name, path := range map[string]string{auth.AccessCookie: "/", auth.RefreshCookie: RefreshCookiePath} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
			Expires:  expire,
			MaxAge:   -1,
		})
	}
}
