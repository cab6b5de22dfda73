package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log level string constants
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFarmVerse   = "Starting FarmVerse"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Database Configuration
// =============================================================================

const (
	// DBMaxConnections is the connection pool ceiling
	DBMaxConnections = 25

	// DBMaxIdleTime is how long an idle connection is kept before release
	DBMaxIdleTime = 5 * time.Minute

	// DBMaxLifetime is the maximum lifetime of a single connection
	DBMaxLifetime = 30 * time.Minute
)

// =============================================================================
// Worker Pool Configuration
// =============================================================================

const (
	// WorkerPoolSize is the number of background workers. The three
	// scheduled jobs never need more; the surplus covers manual admin
	// triggers landing on a busy tick.
	WorkerPoolSize = 4

	// WorkerQueueSize bounds the pending job queue
	WorkerQueueSize = 16
)

// =============================================================================
// Event System Messages
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// =============================================================================
// Market Seed Messages
// =============================================================================

const (
	LogMsgMarketSeeded        = "Market prices seeded"
	LogMsgMarketAlreadySeeded = "Market prices already present, seed skipped"
	ErrMsgFailedCheckPrices   = "failed to check existing market prices"
	ErrMsgFailedSeedPrices    = "failed to seed market prices"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
