package handler

import (
	"net/http"

	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/relay"
)

// SendMessageRequest addresses a message to a user identity. ConnectionID
// is the sender's own relay connection (from the connected event) and is
// excluded from delivery so the sender never hears its own message.
type SendMessageRequest struct {
	SendTo       string `json:"sendTo" validate:"required"`
	Text         string `json:"text" validate:"required"`
	ConnectionID string `json:"connectionId"`
}

// HandleSendMessage forwards a message to every live connection of the
// addressed recipient. Delivery is best-effort: no recipient means the
// message is dropped silently and the request still succeeds.
func HandleSendMessage(hub *relay.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req SendMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send message"); err != nil {
			return
		}

		delivered := hub.Send(claims.UserID, req.SendTo, req.Text, req.ConnectionID)
		log.Debug("Relay message handled",
			"sender_id", claims.UserID,
			"recipient_id", req.SendTo,
			"delivered", delivered)

		respondJSON(w, http.StatusOK, MessageResponse{Message: MsgMessageSent})
	}
}
