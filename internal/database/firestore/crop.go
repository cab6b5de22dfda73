package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/farmverse/farmverse/internal/domain"
)

// CropRepository implements the crop repository for Firestore
type CropRepository struct {
	client *firestore.Client
}

// NewCropRepository creates a new crop repository
func NewCropRepository(client *firestore.Client) *CropRepository {
	return &CropRepository{client: client}
}

// GetCrop retrieves a single crop by ID
func (r *CropRepository) GetCrop(ctx context.Context, cropID string) (*domain.Crop, error) {
	snap, err := r.client.Collection(CollectionCrops).Doc(cropID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("failed to get crop: %w", err)
	}
	var doc cropDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode crop: %w", err)
	}
	crop := doc.toDomain(snap.Ref.ID)
	return &crop, nil
}

// ListCropsByOwner retrieves all crops belonging to an owner
func (r *CropRepository) ListCropsByOwner(ctx context.Context, ownerID string) ([]domain.Crop, error) {
	iter := r.client.Collection(CollectionCrops).
		Where("ownerId", "==", ownerID).
		Documents(ctx)
	return collectCrops(iter)
}

// ListGrowingCrops retrieves every crop that has not reached the ready stage
func (r *CropRepository) ListGrowingCrops(ctx context.Context) ([]domain.Crop, error) {
	iter := r.client.Collection(CollectionCrops).
		Where("isHarvestable", "==", false).
		Documents(ctx)
	return collectCrops(iter)
}

func collectCrops(iter *firestore.DocumentIterator) ([]domain.Crop, error) {
	defer iter.Stop()
	crops := []domain.Crop{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate crops: %w", err)
		}
		var doc cropDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode crop: %w", err)
		}
		crops = append(crops, doc.toDomain(snap.Ref.ID))
	}
	return crops, nil
}

// PlantCrop debits the owner's wallet and creates the crop in one transaction
func (r *CropRepository) PlantCrop(ctx context.Context, crop *domain.Crop, cost int) error {
	userRef := r.client.Collection(CollectionUsers).Doc(crop.OwnerID)
	cropRef := r.client.Collection(CollectionCrops).Doc(crop.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userSnap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		var user userDoc
		if err := userSnap.DataTo(&user); err != nil {
			return fmt.Errorf("failed to decode user: %w", err)
		}
		if user.Coins < cost {
			return domain.ErrInsufficientFunds
		}

		occupied := tx.Documents(r.client.Collection(CollectionCrops).
			Where("ownerId", "==", crop.OwnerID).
			Where("positionX", "==", crop.Position.X).
			Where("positionY", "==", crop.Position.Y).
			Limit(1))
		defer occupied.Stop()
		if _, err := occupied.Next(); err != iterator.Done {
			if err != nil {
				return fmt.Errorf("failed to check position: %w", err)
			}
			return domain.ErrPositionOccupied
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "coins", Value: user.Coins - cost},
			{Path: "updatedAt", Value: time.Now().UTC()},
		}); err != nil {
			return fmt.Errorf("failed to debit wallet: %w", err)
		}
		return tx.Create(cropRef, toCropDoc(crop))
	})
	if err != nil {
		return err
	}
	return nil
}

// HarvestCrop deletes a ready crop and credits the harvester in one
// transaction
func (r *CropRepository) HarvestCrop(ctx context.Context, ownerID, cropID string, payout, experience int) error {
	cropRef := r.client.Collection(CollectionCrops).Doc(cropID)
	userRef := r.client.Collection(CollectionUsers).Doc(ownerID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cropSnap, err := tx.Get(cropRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrCropNotFound
			}
			return fmt.Errorf("failed to get crop: %w", err)
		}
		var crop cropDoc
		if err := cropSnap.DataTo(&crop); err != nil {
			return fmt.Errorf("failed to decode crop: %w", err)
		}
		if crop.OwnerID != ownerID {
			return domain.ErrUnauthorized
		}
		// Readiness is judged by harvestTime, not the persisted isHarvestable
		// flag: the flag only advances when a reconcile pass runs, so a ripe
		// crop can sit unflagged for up to one reconcile interval.
		if crop.HarvestTime.After(time.Now()) {
			return domain.ErrCropNotReady
		}

		userSnap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		var user userDoc
		if err := userSnap.DataTo(&user); err != nil {
			return fmt.Errorf("failed to decode user: %w", err)
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "coins", Value: user.Coins + payout},
			{Path: "experience", Value: user.Experience + experience},
			{Path: "updatedAt", Value: time.Now().UTC()},
		}); err != nil {
			return fmt.Errorf("failed to credit wallet: %w", err)
		}
		return tx.Delete(cropRef)
	})
}

// ApplyGrowthPass persists a batch of stage updates and their notifications
// atomically
func (r *CropRepository) ApplyGrowthPass(ctx context.Context, updates []domain.GrowthUpdate, notifications []domain.Notification) error {
	if len(updates) == 0 && len(notifications) == 0 {
		return nil
	}

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()
		for _, u := range updates {
			ref := r.client.Collection(CollectionCrops).Doc(u.CropID)
			if err := tx.Update(ref, []firestore.Update{
				{Path: "stage", Value: string(u.Stage)},
				{Path: "isHarvestable", Value: u.IsHarvestable},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return fmt.Errorf("failed to update crop %s: %w", u.CropID, err)
			}
		}
		for _, n := range notifications {
			ref := r.client.Collection(CollectionNotifications).Doc(n.ID)
			if err := tx.Create(ref, notificationDoc{
				OwnerID:   n.OwnerID,
				Title:     n.Title,
				Message:   n.Message,
				Kind:      string(n.Kind),
				CropID:    n.CropID,
				Read:      n.Read,
				CreatedAt: n.CreatedAt,
			}); err != nil {
				return fmt.Errorf("failed to create notification: %w", err)
			}
		}
		return nil
	})
}
