package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
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

	// LogFileRetentionCount is the number of old log files kept before a new one is created
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMishkaBot   = "Starting MishkaBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Database
// =============================================================================

// Pool lifetimes for the postgres driver
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Log and error messages for store initialization
const (
	LogMsgStoreInitialized   = "Store initialized"
	ErrMsgUnknownDriver      = "unknown database driver"
	ErrMsgFailedConnectStore = "failed to connect to store"
	ErrMsgFailedMigrate      = "failed to migrate store"
)

// =============================================================================
// Event System
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer = "Shutting down server..."
	LogMsgServerStopped      = "Server stopped"
	LogMsgServerForcedStop   = "Server forced to shutdown"

	// Component names for shutdown logging
	ComponentNameBot       = "discord bot"
	ComponentNameGame      = "game"
	ComponentNameScheduler = "scheduler"
	ComponentNameWorkers   = "worker pool"
	ComponentNameStore     = "store"
)

// Shutdown log message format (component name will be prepended)
const (
	LogMsgComponentShutdownFailed = " shutdown failed"
	LogMsgComponentStopped        = " stopped"
)
