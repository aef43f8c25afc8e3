package handler

import (
	"net/http"

	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/middleware"
	"github.com/mvirden/Confidant_Go/internal/user"
)

// HandleListUsers returns every registered user (password hashes omitted
// by serialization).
func HandleListUsers(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := userService.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List users", err)
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// HandleGetUser returns the public profile of one user
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParam(r, w, "id")
		if !ok {
			return
		}

		profile, err := userService.GetUser(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleDeleteUser removes a user. The authenticated requester must be an
// admin; the service enforces the predicate.
func HandleDeleteUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := URLParam(r, w, "id")
		if !ok {
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("Delete user reached without claims in context")
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidRequestSummary)
			return
		}

		if err := userService.DeleteUser(r.Context(), claims.UserID, id); err != nil {
			respondServiceError(w, r, "Delete user", err)
			return
		}

		respondJSON(w, http.StatusOK, MessageResponse{Message: MsgUserDeleted})
	}
}
