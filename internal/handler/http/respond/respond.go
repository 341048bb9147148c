// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"highwaymetric/internal/domain/entity"
)

// InternalErrorPrefix starts the body of every 500 response.
const InternalErrorPrefix = "An internal error occured: "

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Empty writes only the status code.
func Empty(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// SafeError writes client errors (4xx) with their message and hands anything
// else to Internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code >= 500 {
		Internal(w, err)
		return
	}
	Error(w, code, err)
}

// Internal logs err and writes a 500 whose body carries the sanitized cause.
func Internal(w http.ResponseWriter, err error) {
	msg := SanitizeError(err)
	slog.Default().Error("internal server error",
		slog.Int("code", http.StatusInternalServerError),
		slog.String("error", msg))
	JSON(w, http.StatusInternalServerError, map[string]string{"error": InternalErrorPrefix + msg})
}

// StatusFor maps domain errors to the HTTP status the API reports for them.
func StatusFor(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus writes err with the given status. A 404 has an empty body.
func WithStatus(w http.ResponseWriter, code int, err error) {
	if code == http.StatusNotFound {
		Empty(w, code)
		return
	}
	SafeError(w, code, err)
}

// DomainError writes err using StatusFor.
func DomainError(w http.ResponseWriter, err error) {
	WithStatus(w, StatusFor(err), err)
}
