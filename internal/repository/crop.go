package repository

import (
	"context"

	"github.com/farmverse/farmverse/internal/domain"
)

// Crop defines the interface for crop persistence.
//
// PlantCrop and HarvestCrop are atomic units of work: they re-check their
// preconditions inside the storage transaction and fail without partial
// mutation, so two concurrent harvests of one crop yield exactly one winner.
type Crop interface {
	GetCrop(ctx context.Context, cropID string) (*domain.Crop, error)
	ListCropsByOwner(ctx context.Context, ownerID string) ([]domain.Crop, error)

	// ListGrowingCrops returns every crop with isHarvestable == false,
	// across all owners.
	ListGrowingCrops(ctx context.Context) ([]domain.Crop, error)

	// ApplyGrowthPass commits one reconciliation pass: all stage updates
	// plus all notifications as a single batch. An empty pass is a no-op.
	ApplyGrowthPass(ctx context.Context, updates []domain.GrowthUpdate, notifications []domain.Notification) error

	// PlantCrop atomically checks that the position is free and the owner
	// can afford the cost, debits the wallet and inserts the crop.
	// Fails with domain.ErrPositionOccupied, domain.ErrInsufficientFunds
	// or domain.ErrUserNotFound.
	PlantCrop(ctx context.Context, crop *domain.Crop, cost int) error

	// HarvestCrop atomically deletes a ripe crop owned by ownerID and
	// credits the wallet with payout coins and experience points. Ripeness
	// is re-checked against harvestTime inside the transaction; the
	// persisted isHarvestable flag may lag a reconcile pass and is never
	// the gate. Fails with domain.ErrCropNotFound, domain.ErrUnauthorized
	// or domain.ErrCropNotReady.
	HarvestCrop(ctx context.Context, ownerID, cropID string, payout, experience int) error
}
