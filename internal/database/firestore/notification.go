package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/farmverse/farmverse/internal/domain"
)

// NotificationRepository implements the notification repository for Firestore
type NotificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(client *firestore.Client) *NotificationRepository {
	return &NotificationRepository{client: client}
}

// CreateNotification inserts a single notification
func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	_, err := r.client.Collection(CollectionNotifications).Doc(notification.ID).Create(ctx, notificationDoc{
		OwnerID:   notification.OwnerID,
		Title:     notification.Title,
		Message:   notification.Message,
		Kind:      string(notification.Kind),
		CropID:    notification.CropID,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotificationsByOwner retrieves an owner's notifications newest-first
func (r *NotificationRepository) ListNotificationsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Notification, error) {
	iter := r.client.Collection(CollectionNotifications).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	notifications := []domain.Notification{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notifications: %w", err)
		}
		var doc notificationDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, doc.toDomain(snap.Ref.ID))
	}
	return notifications, nil
}

// MarkNotificationRead marks one of the owner's notifications as read
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, ownerID, notificationID string) error {
	ref := r.client.Collection(CollectionNotifications).Doc(notificationID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrNotificationNotFound
			}
			return fmt.Errorf("failed to get notification: %w", err)
		}
		var doc notificationDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("failed to decode notification: %w", err)
		}
		if doc.OwnerID != ownerID {
			return domain.ErrNotificationNotFound
		}
		return tx.Update(ref, []firestore.Update{{Path: "read", Value: true}})
	})
}
