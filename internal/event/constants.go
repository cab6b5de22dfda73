package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Log message constants
const (
	// LogMsgHandlerErrorFormat reports accumulated handler failures
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
