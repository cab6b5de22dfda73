package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Farm operation error messages
	ErrMsgPlantCropFailed   = "Failed to plant crop"
	ErrMsgHarvestCropFailed = "Failed to harvest crop"
	ErrMsgGetCropsFailed    = "Failed to get crops"

	// Market operation error messages
	ErrMsgGetPricesFailed  = "Failed to get market prices"
	ErrMsgGetTrendFailed   = "Failed to get market trend"
	ErrMsgGetHistoryFailed = "Failed to get market history"
	ErrMsgSellFailed       = "Failed to sell produce"

	// Notification error messages
	ErrMsgGetNotificationsFailed = "Failed to get notifications"
	ErrMsgMarkReadFailed         = "Failed to mark notification read"

	// Wallet error messages
	ErrMsgGetUserFailed         = "Failed to get user"
	ErrMsgGetTransactionsFailed = "Failed to get transactions"

	// Parameter validation error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgCropHarvestedSuccess    = "Crop harvested successfully"
	MsgNotificationReadSuccess = "Notification marked as read"
)
