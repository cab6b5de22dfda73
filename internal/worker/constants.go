package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Scheduled Jobs
// ============================================================================

// Log messages for the recurring simulation jobs
const (
	LogMsgReconcileJobSkipped   = "Growth reconcile skipped, previous pass still running"
	LogMsgMarketTickJobSkipped  = "Market tick skipped, previous tick still running"
	LogMsgDailyRewardJobSkipped = "Daily reward grant skipped, previous grant still running"
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
