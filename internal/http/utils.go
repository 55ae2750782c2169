package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/logger"
)

// WriteJSONError writes {"error": message} with the given status code
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps repository errors to status codes. Only unexpected
// failures are logged.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, action string) {
	var notFound *domain.ErrNotFound
	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &notFound):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &fieldErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": fieldErr.Key,
			"field": fieldErr.Field,
		})
	case domain.IsValidationError(err):
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithField("error", err.Error()).Error("Failed to " + action)
		WriteJSONError(w, "Failed to "+action, http.StatusInternalServerError)
	}
}
