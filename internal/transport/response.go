package transport

import (
	"encoding/json"
	"net/http"

	"vitrine-backend/internal/validation"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteRaw writes an already encoded JSON body, typically a cache hit.
func WriteRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func WriteValidationError(w http.ResponseWriter, err *validation.Error) {
	var details map[string]string
	if err != nil {
		details = err.Fields
	}
	WriteError(w, http.StatusBadRequest, "validation error", details)
}

func WriteCreated(w http.ResponseWriter, id string) {
	WriteJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}
