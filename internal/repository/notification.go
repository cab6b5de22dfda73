package repository

import (
	"context"

	"github.com/farmverse/farmverse/internal/domain"
)

// Notification defines the interface for the notification store.
// The engine emits fire-and-forget; delivery and read state are the
// store's concern.
type Notification interface {
	CreateNotification(ctx context.Context, notification *domain.Notification) error
	ListNotificationsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, ownerID, notificationID string) error
}
