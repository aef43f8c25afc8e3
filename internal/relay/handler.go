package relay

import (
	"net/http"
	"strings"
	"time"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/logger"
)

// Authenticator verifies a bearer token and yields the subject's claims
type Authenticator interface {
	Authenticate(tokenString string) (*auth.Claims, error)
}

// Handler returns the HTTP handler that upgrades a request into a live
// relay connection (Server-Sent Events stream).
//
// The join identity comes from the verified bearer token, never from a
// client-supplied identifier. The token is read from the Authorization
// header or the `token` query parameter - EventSource cannot set headers.
func Handler(hub *Hub, authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		claims, err := authenticator.Authenticate(bearerToken(r))
		if err != nil {
			log.Warn("Relay connection rejected", "error", err)
			http.Error(w, "Invalid token", http.StatusForbidden)
			return
		}

		// Set SSE headers
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming not supported", http.StatusInternalServerError)
			return
		}

		client := hub.Join(claims.UserID)
		if client == nil {
			http.Error(w, "Server shutting down", http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected,
			"connection_id", client.ID,
			"user_id", claims.UserID,
			"total_connections", hub.ConnectionCount())

		// Ensure cleanup on disconnect
		defer func() {
			hub.Leave(client.ID)
			log.Info(LogMsgClientDisconnected,
				"connection_id", client.ID,
				"user_id", claims.UserID,
				"total_connections", hub.ConnectionCount())
		}()

		// Send initial connection event carrying the connection ID the
		// client echoes back in send requests for self-echo exclusion.
		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: ConnectedPayload{
				ConnectionID: client.ID,
				UserID:       claims.UserID,
			},
		}
		if msg, err := FormatSSEMessage(connectEvent); err == nil {
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()
		}

		// Keepalive ticker
		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		// Event loop
		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				// Client disconnected
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Channel closed, hub is shutting down
					return
				}

				msg, err := FormatSSEMessage(event)
				if err != nil {
					log.Error(LogMsgWriteError, "error", err)
					continue
				}

				if _, err := w.Write(msg); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				keepalive := Event{
					Type:      EventTypeKeepalive,
					Timestamp: time.Now().Unix(),
				}
				msg, _ := FormatSSEMessage(keepalive)
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// bearerToken extracts the token from the Authorization header, falling
// back to the `token` query parameter.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
