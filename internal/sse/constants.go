package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often an idle stream gets a ping
const KeepaliveInterval = 30 * time.Second

// Stream event types
const (
	EventTypeConnected       = "connected"
	EventTypeKeepalive       = "keepalive"
	EventTypeUpdateChecked   = "update.checked"
	EventTypeUpdateAvailable = "update.available"
	EventTypeItemsRemoved    = "items.removed"
	EventTypeItemsDropped    = "items.dropped"
)

// TypesQueryParam filters a stream to a comma separated list of event types
const TypesQueryParam = "types"

// Log messages
const (
	LogMsgClientConnected    = "Event stream client connected"
	LogMsgClientDisconnected = "Event stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgEventDropped       = "Broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgSubscriberReady    = "Event stream subscriber registered"
)

// ErrMsgStreamingUnsupported is returned when the writer cannot flush
const ErrMsgStreamingUnsupported = "Streaming not supported"
