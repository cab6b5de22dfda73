package farm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/growth"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/metrics"
	"github.com/farmverse/farmverse/internal/repository"
)

// Service defines the crop lifecycle business logic. It owns every state
// transition of a crop record; clients never write crop state directly.
type Service interface {
	// Plant debits the crop's cost and creates the crop record as one
	// logical unit. Fails without mutation on unknown type, occupied
	// position or insufficient funds.
	Plant(ctx context.Context, ownerID, cropType string, position domain.Position) (*domain.Crop, error)

	// Harvest pays out the current market price (catalog base value when no
	// price is recorded), awards experience and deletes the crop.
	Harvest(ctx context.Context, ownerID, cropID string) (*domain.HarvestResult, error)

	// ListCrops returns all crops belonging to an owner.
	ListCrops(ctx context.Context, ownerID string) ([]domain.Crop, error)

	// ReconcileAll re-evaluates every non-harvestable crop at the given
	// time, persisting stage advances and emitting notifications. Running
	// it twice at the same instant changes nothing the second time.
	ReconcileAll(ctx context.Context, now time.Time) (*ReconcileSummary, error)
}

// ReconcileSummary reports one reconciliation pass.
type ReconcileSummary struct {
	Evaluated     int `json:"evaluated"`
	StageChanges  int `json:"stage_changes"`
	BecameReady   int `json:"became_ready"`
	Notifications int `json:"notifications"`
}

type service struct {
	catalog    domain.Catalog
	cropRepo   repository.Crop
	walletRepo repository.Wallet
	marketRepo repository.Market
	bus        event.Bus
	now        func() time.Time
}

// NewService creates a new farm service. The catalog is the single source
// of truth for crop configuration; the service holds no crop literals.
func NewService(catalog domain.Catalog, cropRepo repository.Crop, walletRepo repository.Wallet, marketRepo repository.Market, bus event.Bus) Service {
	return &service{
		catalog:    catalog,
		cropRepo:   cropRepo,
		walletRepo: walletRepo,
		marketRepo: marketRepo,
		bus:        bus,
		now:        time.Now,
	}
}

func (s *service) Plant(ctx context.Context, ownerID, cropType string, position domain.Position) (*domain.Crop, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlantRequested, "ownerID", ownerID, "cropType", cropType, "x", position.X, "y", position.Y)

	def, ok := s.catalog.Get(cropType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCropType, cropType)
	}

	// Affordability pre-check before any mutation. The store re-checks
	// inside its transaction, so a concurrent spend still cannot overdraw.
	user, err := s.walletRepo.GetUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if user.Coins < def.Cost {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, user.Coins, def.Cost)
	}

	now := s.now()
	crop := &domain.Crop{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		CropType:      cropType,
		Position:      position,
		PlantedAt:     now,
		HarvestTime:   now.Add(def.GrowthDuration),
		Stage:         domain.StageSeedling,
		IsHarvestable: false,
	}

	if err := s.cropRepo.PlantCrop(ctx, crop, def.Cost); err != nil {
		return nil, err
	}

	metrics.CropsPlanted.WithLabelValues(cropType).Inc()
	s.publish(ctx, event.NewCropPlantedEvent(crop, def.Cost))

	log.Info(LogMsgPlantSucceeded, "cropID", crop.ID, "harvestTime", crop.HarvestTime)
	return crop, nil
}

func (s *service) Harvest(ctx context.Context, ownerID, cropID string) (*domain.HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHarvestRequested, "ownerID", ownerID, "cropID", cropID)

	crop, err := s.cropRepo.GetCrop(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if crop.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}

	// Recompute readiness from the clock rather than trusting the persisted
	// flag, which may lag up to one reconciliation interval.
	state := growth.At(crop.PlantedAt, crop.HarvestTime, s.now())
	if !state.Harvestable {
		return nil, fmt.Errorf("%w: ready at %s", domain.ErrCropNotReady, crop.HarvestTime.Format(time.RFC3339))
	}

	payout, err := s.payoutFor(ctx, crop.CropType)
	if err != nil {
		return nil, err
	}

	if err := s.cropRepo.HarvestCrop(ctx, ownerID, cropID, payout, HarvestExperience); err != nil {
		return nil, err
	}

	metrics.CropsHarvested.WithLabelValues(crop.CropType).Inc()
	metrics.HarvestPayout.WithLabelValues(crop.CropType).Add(float64(payout))
	s.publish(ctx, event.NewCropHarvestedEvent(crop, payout, HarvestExperience))

	log.Info(LogMsgHarvestSucceeded, "cropID", cropID, "payout", payout)
	return &domain.HarvestResult{
		CropID:     cropID,
		CropType:   crop.CropType,
		Payout:     payout,
		Experience: HarvestExperience,
	}, nil
}

func (s *service) ListCrops(ctx context.Context, ownerID string) ([]domain.Crop, error) {
	return s.cropRepo.ListCropsByOwner(ctx, ownerID)
}

// payoutFor returns the current market price for a crop type, falling back
// to the catalog base value when no price has been recorded yet.
func (s *service) payoutFor(ctx context.Context, cropType string) (int, error) {
	price, err := s.marketRepo.GetPrice(ctx, cropType)
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			def, ok := s.catalog.Get(cropType)
			if !ok {
				return 0, fmt.Errorf("%w: %s", domain.ErrUnknownCropType, cropType)
			}
			return def.BaseValue, nil
		}
		return 0, fmt.Errorf("failed to get market price: %w", err)
	}
	return price.Price, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", e.Type, "error", err)
	}
}
