package database

// DefaultMinConnections is the number of idle connections the pool keeps
// warm so the first request after a quiet period doesn't pay the dial cost.
const DefaultMinConnections = 2

// Error Messages - Pool Construction
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Connected to Postgres"
)
