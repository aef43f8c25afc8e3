package relay

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvirden/Confidant_Go/internal/metrics"
)

// Event represents an event sent to a relay connection
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MessagePayload is the body of a receive-message event
type MessagePayload struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

// ConnectedPayload is the body of the initial connected event
type ConnectedPayload struct {
	ConnectionID string `json:"connection_id"`
	UserID       string `json:"user_id"`
}

// Client represents one live connection joined under a user identity.
// A user may hold several clients at once; all of them receive traffic
// addressed to that identity (group membership, not a single slot).
type Client struct {
	ID           string
	UserID       string
	EventChannel chan Event
}

// Hub tracks live connections keyed by user identity and forwards
// messages between them. Delivery is best-effort: no queueing, no
// persistence, silent drop when the recipient has no live connection.
//
// The registry is the only shared mutable state in the process; all
// access goes through the mutex since Join/Send/Leave run concurrently
// across many connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*Client // userID -> connID -> client
	conns   map[string]string             // connID -> userID
	closed  bool
}

// NewHub creates a new relay Hub. One instance is created at process
// start and passed explicitly to whatever accepts connections; there is
// no package-level singleton.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[string]*Client),
		conns:   make(map[string]string),
	}
}

// Join registers a new connection under userID and returns its client.
// Returns nil if the hub has been stopped.
func (h *Hub) Join(userID string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		UserID:       userID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	group, ok := h.clients[userID]
	if !ok {
		group = make(map[string]*Client)
		h.clients[userID] = group
	}
	group[client.ID] = client
	h.conns[client.ID] = userID

	metrics.RelayConnections.Inc()
	return client
}

// Leave removes one connection from the registry and closes its channel.
// Called on transport disconnect; the entry must be released promptly so
// vanished clients do not leak registry slots.
func (h *Hub) Leave(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userID, ok := h.conns[connID]
	if !ok {
		return
	}
	delete(h.conns, connID)

	if group, ok := h.clients[userID]; ok {
		if client, ok := group[connID]; ok {
			close(client.EventChannel)
			delete(group, connID)
		}
		if len(group) == 0 {
			delete(h.clients, userID)
		}
	}

	metrics.RelayConnections.Dec()
}

// Send delivers a receive-message event to every connection joined under
// recipientID, excluding the sender's own connection (no self-echo).
// Returns the number of connections the event reached; zero means the
// message was silently dropped.
func (h *Hub) Send(senderID, recipientID, text, excludeConnID string) int {
	event := Event{
		ID:        uuid.NewString(),
		Type:      EventTypeReceiveMessage,
		Timestamp: time.Now().Unix(),
		Payload: MessagePayload{
			ID:     senderID,
			Text:   text,
			Sender: senderID,
		},
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	group, ok := h.clients[recipientID]
	if !ok || len(group) == 0 {
		metrics.RelayMessagesDropped.WithLabelValues(metrics.ReasonNoRecipient).Inc()
		return 0
	}

	delivered := 0
	for _, client := range group {
		if client.ID == excludeConnID {
			continue
		}

		// Non-blocking send: a slow consumer loses events rather than
		// stalling every other connection.
		select {
		case client.EventChannel <- event:
			delivered++
			metrics.RelayMessagesDelivered.Inc()
		default:
			metrics.RelayMessagesDropped.WithLabelValues(metrics.ReasonFullBuffer).Inc()
		}
	}
	return delivered
}

// ConnectionCount returns the number of live connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// UserConnectionCount returns the number of live connections for one user
func (h *Hub) UserConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Stop shuts the hub down, closing every client channel. Join calls after
// Stop are refused.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	for _, group := range h.clients {
		for _, client := range group {
			close(client.EventChannel)
		}
	}
	h.clients = make(map[string]map[string]*Client)
	for range h.conns {
		metrics.RelayConnections.Dec()
	}
	h.conns = make(map[string]string)
}

// FormatSSEMessage formats an event for transmission over SSE
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
