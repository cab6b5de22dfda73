package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/repository"
)

var testCatalog = domain.Catalog{
	"wheat": {
		Name:           "wheat",
		DisplayName:    "Wheat",
		GrowthDuration: 2 * time.Hour,
		BaseValue:      100,
		Cost:           50,
		Fluctuation:    0.3,
	},
	"carrot": {
		Name:           "carrot",
		DisplayName:    "Carrot",
		GrowthDuration: 1 * time.Hour,
		BaseValue:      80,
		Cost:           40,
		Fluctuation:    0.2,
	},
}

func newTestService(t *testing.T, crops repository.Crop, wallets repository.Wallet, market repository.Market, bus event.Bus, now time.Time) *service {
	t.Helper()
	svc, ok := NewService(testCatalog, crops, wallets, market, bus).(*service)
	require.True(t, ok)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPlant(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		crops := new(MockCropRepository)
		wallets := new(MockWalletRepository)
		bus := new(MockBus)

		wallets.On("GetUser", ctx, "user-1").Return(&domain.User{ID: "user-1", Coins: 200}, nil)
		crops.On("PlantCrop", ctx, mock.AnythingOfType("*domain.Crop"), 50).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, crops, wallets, nil, bus, now)
		crop, err := svc.Plant(ctx, "user-1", "wheat", domain.Position{X: 2, Y: 3})

		require.NoError(t, err)
		assert.NotEmpty(t, crop.ID)
		assert.Equal(t, "user-1", crop.OwnerID)
		assert.Equal(t, domain.StageSeedling, crop.Stage)
		assert.False(t, crop.IsHarvestable)
		assert.Equal(t, now, crop.PlantedAt)
		assert.Equal(t, now.Add(2*time.Hour), crop.HarvestTime)
		crops.AssertExpectations(t)
	})

	t.Run("unknown crop type", func(t *testing.T) {
		crops := new(MockCropRepository)
		wallets := new(MockWalletRepository)

		svc := newTestService(t, crops, wallets, nil, nil, now)
		_, err := svc.Plant(ctx, "user-1", "pumpkin", domain.Position{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownCropType)
		wallets.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
		crops.AssertNotCalled(t, "PlantCrop", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		crops := new(MockCropRepository)
		wallets := new(MockWalletRepository)

		wallets.On("GetUser", ctx, "user-1").Return(&domain.User{ID: "user-1", Coins: 49}, nil)

		svc := newTestService(t, crops, wallets, nil, nil, now)
		_, err := svc.Plant(ctx, "user-1", "wheat", domain.Position{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		crops.AssertNotCalled(t, "PlantCrop", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exact funds succeed", func(t *testing.T) {
		crops := new(MockCropRepository)
		wallets := new(MockWalletRepository)
		bus := new(MockBus)

		wallets.On("GetUser", ctx, "user-1").Return(&domain.User{ID: "user-1", Coins: 50}, nil)
		crops.On("PlantCrop", ctx, mock.AnythingOfType("*domain.Crop"), 50).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, crops, wallets, nil, bus, now)
		_, err := svc.Plant(ctx, "user-1", "wheat", domain.Position{})
		require.NoError(t, err)
	})

	t.Run("position occupied surfaces from store", func(t *testing.T) {
		crops := new(MockCropRepository)
		wallets := new(MockWalletRepository)

		wallets.On("GetUser", ctx, "user-1").Return(&domain.User{ID: "user-1", Coins: 200}, nil)
		crops.On("PlantCrop", ctx, mock.Anything, 50).Return(domain.ErrPositionOccupied)

		svc := newTestService(t, crops, wallets, nil, nil, now)
		_, err := svc.Plant(ctx, "user-1", "wheat", domain.Position{X: 1, Y: 1})

		assert.ErrorIs(t, err, domain.ErrPositionOccupied)
	})
}

func TestHarvest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	readyCrop := func() *domain.Crop {
		return &domain.Crop{
			ID:            "crop-1",
			OwnerID:       "user-1",
			CropType:      "wheat",
			PlantedAt:     now.Add(-3 * time.Hour),
			HarvestTime:   now.Add(-1 * time.Hour),
			Stage:         domain.StageReady,
			IsHarvestable: true,
		}
	}

	t.Run("pays market price", func(t *testing.T) {
		crops := new(MockCropRepository)
		market := new(MockMarketRepository)
		bus := new(MockBus)

		crops.On("GetCrop", ctx, "crop-1").Return(readyCrop(), nil)
		market.On("GetPrice", ctx, "wheat").Return(&domain.MarketPrice{CropType: "wheat", Price: 117}, nil)
		crops.On("HarvestCrop", ctx, "user-1", "crop-1", 117, HarvestExperience).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, crops, nil, market, bus, now)
		result, err := svc.Harvest(ctx, "user-1", "crop-1")

		require.NoError(t, err)
		assert.Equal(t, 117, result.Payout)
		assert.Equal(t, HarvestExperience, result.Experience)
		assert.Equal(t, "wheat", result.CropType)
		crops.AssertExpectations(t)
	})

	t.Run("falls back to base value when no price recorded", func(t *testing.T) {
		crops := new(MockCropRepository)
		market := new(MockMarketRepository)
		bus := new(MockBus)

		crops.On("GetCrop", ctx, "crop-1").Return(readyCrop(), nil)
		market.On("GetPrice", ctx, "wheat").Return(nil, domain.ErrPriceNotFound)
		crops.On("HarvestCrop", ctx, "user-1", "crop-1", 100, HarvestExperience).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, crops, nil, market, bus, now)
		result, err := svc.Harvest(ctx, "user-1", "crop-1")

		require.NoError(t, err)
		assert.Equal(t, 100, result.Payout)
	})

	t.Run("ready by the clock even if not yet flagged", func(t *testing.T) {
		crops := new(MockCropRepository)
		market := new(MockMarketRepository)
		bus := new(MockBus)

		// Ripe for half an hour, but no reconcile pass has run since, so
		// the persisted record still says not harvestable.
		crop := readyCrop()
		crop.HarvestTime = now.Add(-30 * time.Minute)
		crop.Stage = domain.StageMature
		crop.IsHarvestable = false
		crops.On("GetCrop", ctx, "crop-1").Return(crop, nil)
		market.On("GetPrice", ctx, "wheat").Return(&domain.MarketPrice{CropType: "wheat", Price: 117}, nil)
		crops.On("HarvestCrop", ctx, "user-1", "crop-1", 117, HarvestExperience).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, crops, nil, market, bus, now)
		result, err := svc.Harvest(ctx, "user-1", "crop-1")

		require.NoError(t, err)
		assert.Equal(t, 117, result.Payout)
		crops.AssertExpectations(t)
	})

	t.Run("not ready by the clock even if flagged", func(t *testing.T) {
		crops := new(MockCropRepository)

		// Stale record claims harvestable but the window hasn't elapsed.
		crop := readyCrop()
		crop.PlantedAt = now.Add(-30 * time.Minute)
		crop.HarvestTime = now.Add(90 * time.Minute)
		crops.On("GetCrop", ctx, "crop-1").Return(crop, nil)

		svc := newTestService(t, crops, nil, nil, nil, now)
		_, err := svc.Harvest(ctx, "user-1", "crop-1")

		assert.ErrorIs(t, err, domain.ErrCropNotReady)
		crops.AssertNotCalled(t, "HarvestCrop", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong owner", func(t *testing.T) {
		crops := new(MockCropRepository)
		crops.On("GetCrop", ctx, "crop-1").Return(readyCrop(), nil)

		svc := newTestService(t, crops, nil, nil, nil, now)
		_, err := svc.Harvest(ctx, "user-2", "crop-1")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("crop not found", func(t *testing.T) {
		crops := new(MockCropRepository)
		crops.On("GetCrop", ctx, "missing").Return(nil, domain.ErrCropNotFound)

		svc := newTestService(t, crops, nil, nil, nil, now)
		_, err := svc.Harvest(ctx, "user-1", "missing")

		assert.ErrorIs(t, err, domain.ErrCropNotFound)
	})
}

func TestListCrops(t *testing.T) {
	ctx := context.Background()
	crops := new(MockCropRepository)
	want := []domain.Crop{{ID: "crop-1"}, {ID: "crop-2"}}
	crops.On("ListCropsByOwner", ctx, "user-1").Return(want, nil)

	svc := newTestService(t, crops, nil, nil, nil, time.Now())
	got, err := svc.ListCrops(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
