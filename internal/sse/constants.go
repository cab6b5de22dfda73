package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// EventTypeConnected is the first event sent on a new connection.
const EventTypeConnected = "connected"

// EventTypeKeepalive is the keepalive ping event type.
const EventTypeKeepalive = "keepalive"

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)
