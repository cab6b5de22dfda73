package market

import "time"

// MinPrice is the floor for every simulated price. A crop is never worthless.
const MinPrice = 1

// TrendThreshold is the relative change at which price movement stops being
// classified as stable. Exactly 5% counts as a trend.
const TrendThreshold = 0.05

// TrendWindow is the number of history snapshots consulted for a trend.
const TrendWindow = 2

// Price cache settings
const (
	PriceCacheSize = 8
	PriceCacheTTL  = 30 * time.Second
)

// Log message constants
const (
	LogMsgTickStarted   = "Market tick started"
	LogMsgTickFinished  = "Market tick finished"
	LogMsgTickFailed    = "Market tick failed"
	LogMsgSellRequested = "Sell requested"
	LogMsgSellSucceeded = "Produce sold"
)

// Metric result labels
const (
	ResultOK    = "ok"
	ResultError = "error"
)
