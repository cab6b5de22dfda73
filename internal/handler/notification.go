package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/repository"
)

// Default and maximum number of notifications returned per request.
const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

// MarkReadRequest represents the request to mark a notification as read
type MarkReadRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	repo repository.Notification
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo repository.Notification) *NotificationHandler {
	return &NotificationHandler{
		repo: repo,
	}
}

// List handles the list notifications endpoint
// @Summary List a player's notifications
// @Description Returns the player's notifications, newest first
// @Tags notifications
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum notifications to return (default 20, max 100)"
// @Success 200 {array} domain.Notification
// @Failure 400 {object} ErrorResponse "Missing user_id or invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultNotificationLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		log.Warn("Invalid limit parameter", "limit", limitStr)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}

	notifications, err := h.repo.ListNotificationsByOwner(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get notifications", err)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	respondJSON(w, http.StatusOK, notifications)
}

// MarkRead handles the mark notification read endpoint
// @Summary Mark a notification as read
// @Description Marks one of the player's notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body MarkReadRequest true "Mark read request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	notificationID := chi.URLParam(r, "id")

	var req MarkReadRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mark notification read"); err != nil {
		return
	}

	if err := h.repo.MarkNotificationRead(r.Context(), req.UserID, notificationID); err != nil {
		respondServiceError(w, r, "Mark notification read", err)
		return
	}

	log.Info("Notification marked read", "user_id", req.UserID, "notification_id", notificationID)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationReadSuccess})
}
