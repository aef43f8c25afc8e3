package relay

import "time"

// Buffer sizes
const (
	// ClientEventBuffer is the buffer size for each connection's event channel
	ClientEventBuffer = 50
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types
const (
	// EventTypeConnected is sent once when a connection joins; its payload
	// carries the connection ID the client echoes back in send requests
	EventTypeConnected = "connected"

	// EventTypeReceiveMessage is the point-to-point message delivery event
	EventTypeReceiveMessage = "receive-message"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "Relay client connected"
	LogMsgClientDisconnected = "Relay client disconnected"
	LogMsgMessageDropped     = "Relay message dropped"
	LogMsgWriteError         = "Failed to write relay event"
)
