package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// User and wallet messages
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgNotEnoughCoinsError = "Not enough coins"

	// Crop messages
	ErrMsgCropNotFoundError     = "Crop not found"
	ErrMsgCropNotReadyError     = "Crop not ready for harvest"
	ErrMsgNotYourCropError      = "User not authorized"
	ErrMsgUnknownCropTypeError  = "Unknown crop type"
	ErrMsgPositionOccupiedError = "That plot already has a crop"

	// Market messages
	ErrMsgPriceNotFoundError = "Crop not found in market"

	// Notification messages
	ErrMsgNotificationNotFoundError = "Notification not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrCropNotReady):
		return http.StatusBadRequest, ErrMsgCropNotReadyError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgNotYourCropError
	case errors.Is(err, domain.ErrUnknownCropType):
		return http.StatusBadRequest, ErrMsgUnknownCropTypeError
	case errors.Is(err, domain.ErrPositionOccupied):
		return http.StatusConflict, ErrMsgPositionOccupiedError
	case errors.Is(err, domain.ErrPriceNotFound):
		return http.StatusNotFound, ErrMsgPriceNotFoundError
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, ErrMsgNotificationNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
