package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmverse/farmverse/internal/domain"
)

// NotificationRepository implements the notification repository for PostgreSQL
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification inserts a single notification
func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (notification_id, owner_id, title, message, kind, crop_id, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`,
		notification.ID, notification.OwnerID, notification.Title, notification.Message,
		string(notification.Kind), notification.CropID, notification.Read, notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotificationsByOwner retrieves an owner's notifications newest-first
func (r *NotificationRepository) ListNotificationsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT notification_id, owner_id, title, message, kind, COALESCE(crop_id::text, ''), read, created_at
		 FROM notifications WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		var kind string
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Message, &kind, &n.CropID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Kind = domain.NotificationKind(kind)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks one of the owner's notifications as read
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, ownerID, notificationID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND owner_id = $2`,
		notificationID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
