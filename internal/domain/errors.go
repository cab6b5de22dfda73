package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User / wallet errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Crop errors
	ErrMsgCropNotFound     = "crop not found"
	ErrMsgCropNotReady     = "crop not ready for harvest"
	ErrMsgUnauthorized     = "crop belongs to another user"
	ErrMsgUnknownCropType  = "unknown crop type"
	ErrMsgPositionOccupied = "position already occupied"

	// Configuration errors
	ErrMsgInvalidCatalog = "invalid crop catalog"

	// Market errors
	ErrMsgPriceNotFound = "no market price recorded"

	// Notification errors
	ErrMsgNotificationNotFound = "notification not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors.
// These errors should be used consistently across all layers of the
// application. Wrap them with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context.
var (
	// User / wallet errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Crop errors
	ErrCropNotFound     = errors.New(ErrMsgCropNotFound)
	ErrCropNotReady     = errors.New(ErrMsgCropNotReady)
	ErrUnauthorized     = errors.New(ErrMsgUnauthorized)
	ErrUnknownCropType  = errors.New(ErrMsgUnknownCropType)
	ErrPositionOccupied = errors.New(ErrMsgPositionOccupied)

	// Configuration errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Market errors
	ErrPriceNotFound = errors.New(ErrMsgPriceNotFound)

	// Notification errors
	ErrNotificationNotFound = errors.New(ErrMsgNotificationNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
