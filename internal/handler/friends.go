package handler

import (
	"errors"
	"net/http"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/friends"
	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/middleware"
)

// AddFriendRequest names the target by username. The field is called "id"
// on the wire for compatibility with the original client.
type AddFriendRequest struct {
	ID string `json:"id" validate:"required"`
}

// HandleAddFriend creates the symmetric edge between the authenticated
// requester and the named target.
func HandleAddFriend(friendsService friends.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req AddFriendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add friend"); err != nil {
			return
		}

		list, err := friendsService.AddFriend(r.Context(), claims.UserID, req.ID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusBadRequest, ErrMsgUserDoesNotExist)
				return
			}
			respondServiceError(w, r, "Add friend", err)
			return
		}

		respondJSON(w, http.StatusCreated, list)
	}
}

// HandleListFriends returns a user's friend list verbatim
func HandleListFriends(friendsService friends.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParam(r, w, "id")
		if !ok {
			return
		}

		list, err := friendsService.ListFriends(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusBadRequest, ErrMsgUserDoesNotExist)
				return
			}
			respondServiceError(w, r, "List friends", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

// HandleRemoveFriend removes one edge from both sides. A non-existent
// edge is a no-op, not an error.
func HandleRemoveFriend(friendsService friends.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := URLParam(r, w, "id")
		if !ok {
			return
		}

		list, err := friendsService.RemoveFriend(r.Context(), claims.UserID, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusBadRequest, ErrMsgUserDoesNotExist)
				return
			}
			respondServiceError(w, r, "Remove friend", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

// HandleRemoveAllFriends empties the requester's own friend list
// (one-sided; former friends keep their reference).
func HandleRemoveAllFriends(friendsService friends.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := friendsService.RemoveAllFriends(r.Context(), claims.UserID); err != nil {
			respondServiceError(w, r, "Remove all friends", err)
			return
		}

		respondJSON(w, http.StatusOK, MessageResponse{Message: MsgFriendsCleared})
	}
}

// requireClaims fetches the verified claims the auth middleware stored.
// Reaching a protected handler without them is a wiring bug.
func requireClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		log := logger.FromContext(r.Context())
		log.Error("Protected handler reached without claims in context")
		respondError(w, http.StatusUnauthorized, ErrMsgInvalidRequestSummary)
		return nil, false
	}
	return claims, true
}
