package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/todoapp/api/internal/core/domain"
)

const genericErrorMessage = "An error occurred processing your request. Please try again."

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope for err. Internal failures are
// logged with their cause but reported to the client with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		message = genericErrorMessage
	} else {
		logger.WarnContext(r.Context(), "request rejected",
			"method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	respondJSON(w, status, errorResponse{Errors: []errorEntry{{Message: message}}})
}
