package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/logger"
)

// Standard response types for consistent API responses

// MessageResponse represents a simple operation result message.
// Errors use the same {message} shape the API has always exposed.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response with a {message} body
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// User-resource endpoints use these defaults; login, changePassword and the
// friends endpoints override not-found to 400 to preserve the published surface.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundHTTP
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, ErrMsgUsernameTakenHTTP
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, ErrMsgInvalidPassword
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, ErrMsgPermissionDeniedHTTP
	case errors.Is(err, domain.ErrSelfFriend):
		return http.StatusBadRequest, ErrMsgSelfFriendHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}

// respondServiceError converts a service error at the handler boundary.
// Nothing propagates past here; store and hash failures all land as one
// of the mapped statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "status", status, "error", err)
	}
	respondError(w, status, message)
}
