package worker

// Job names
const (
	JobNameSweepStaleRounds = "sweep_stale_rounds"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ============================================================================
// Log Messages - Sweeper
// ============================================================================

// LogMsgSweepEndedRounds is logged when the sweeper ends abandoned rounds
const LogMsgSweepEndedRounds = "Sweeper ended stale rounds"

// ErrContextSweep wraps errors from the stale round sweep
const ErrContextSweep = "failed to sweep stale rounds"

// ============================================================================
// Defaults
// ============================================================================

// Pool configuration used by cmd/discord
const (
	DefaultWorkerCount = 1
	DefaultQueueSize   = 4
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
