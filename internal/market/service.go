package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/metrics"
	"github.com/farmverse/farmverse/internal/repository"
)

// Service defines the market simulator business logic.
type Service interface {
	// Tick resamples every catalog crop's price around its base value and
	// commits the new prices plus one history snapshot as a batch.
	Tick(ctx context.Context, now time.Time) ([]domain.MarketPrice, error)

	// GetPrices returns the current price list, served from cache between
	// ticks.
	GetPrices(ctx context.Context) ([]domain.MarketPrice, error)

	// GetTrend classifies a crop's movement across the two most recent
	// snapshots. With fewer than two snapshots the trend is stable.
	GetTrend(ctx context.Context, cropType string) (domain.Trend, error)

	// History returns up to n snapshots ordered newest-first.
	History(ctx context.Context, n int) ([]domain.MarketSnapshot, error)

	// Sell credits the seller at the current price (catalog base value when
	// no price is recorded) and appends a transaction record.
	Sell(ctx context.Context, userID, cropType string, quantity int) (*domain.Transaction, error)
}

type service struct {
	catalog    domain.Catalog
	repo       repository.Market
	walletRepo repository.Wallet
	txLog      repository.TransactionLog
	bus        event.Bus
	cache      *priceCache
	rnd        func() float64 // Injectable for testing
	now        func() time.Time
}

// NewService creates a new market service.
func NewService(catalog domain.Catalog, repo repository.Market, walletRepo repository.Wallet, txLog repository.TransactionLog, bus event.Bus) Service {
	return &service{
		catalog:    catalog,
		repo:       repo,
		walletRepo: walletRepo,
		txLog:      txLog,
		bus:        bus,
		cache:      newPriceCache(PriceCacheSize, PriceCacheTTL),
		rnd:        rand.Float64, //nolint:gosec // weak random is fine for simulated prices
		now:        time.Now,
	}
}

func (s *service) Tick(ctx context.Context, now time.Time) ([]domain.MarketPrice, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTickStarted, "now", now.Format(time.RFC3339))

	types := s.catalog.Types()
	sort.Strings(types)

	prices := make([]domain.MarketPrice, 0, len(types))
	snapshot := domain.MarketSnapshot{
		Timestamp: now,
		Prices:    make(map[string]int, len(types)),
	}
	for _, cropType := range types {
		def, _ := s.catalog.Get(cropType)
		price := s.samplePrice(def)
		prices = append(prices, domain.MarketPrice{
			CropType:  cropType,
			Price:     price,
			UpdatedAt: now,
		})
		snapshot.Prices[cropType] = price
	}

	if err := s.repo.ApplyTick(ctx, prices, snapshot); err != nil {
		metrics.MarketTicks.WithLabelValues(ResultError).Inc()
		log.Error(LogMsgTickFailed, "error", err)
		return nil, fmt.Errorf("failed to apply market tick: %w", err)
	}
	s.cache.Invalidate()

	for _, p := range prices {
		metrics.MarketPrice.WithLabelValues(p.CropType).Set(float64(p.Price))
	}
	metrics.MarketTicks.WithLabelValues(ResultOK).Inc()
	s.publish(ctx, event.NewMarketTickedEvent(prices))

	log.Info(LogMsgTickFinished, "cropTypes", len(prices))
	return prices, nil
}

// samplePrice draws a price uniformly in [base*(1-f), base*(1+f)], rounded
// to the nearest coin. Each tick is an independent draw around the base
// value, so prices cannot drift away from it over time.
func (s *service) samplePrice(def domain.CropDefinition) int {
	factor := 1 - def.Fluctuation + s.rnd()*2*def.Fluctuation
	price := int(math.Round(float64(def.BaseValue) * factor))
	if price < MinPrice {
		price = MinPrice
	}
	return price
}

func (s *service) GetPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	if prices, ok := s.cache.Get(); ok {
		return prices, nil
	}
	prices, err := s.repo.GetAllPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	s.cache.Set(prices)
	return prices, nil
}

func (s *service) GetTrend(ctx context.Context, cropType string) (domain.Trend, error) {
	if _, ok := s.catalog.Get(cropType); !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownCropType, cropType)
	}

	snapshots, err := s.repo.RecentHistory(ctx, TrendWindow)
	if err != nil {
		return "", fmt.Errorf("failed to get market history: %w", err)
	}
	if len(snapshots) < TrendWindow {
		return domain.TrendStable, nil
	}

	latest, ok := snapshots[0].Prices[cropType]
	previous, prevOK := snapshots[1].Prices[cropType]
	if !ok || !prevOK || previous == 0 {
		return domain.TrendStable, nil
	}

	change := (float64(latest) - float64(previous)) / float64(previous)
	switch {
	case change >= TrendThreshold:
		return domain.TrendIncreasing, nil
	case change <= -TrendThreshold:
		return domain.TrendDecreasing, nil
	default:
		return domain.TrendStable, nil
	}
}

func (s *service) History(ctx context.Context, n int) ([]domain.MarketSnapshot, error) {
	return s.repo.RecentHistory(ctx, n)
}

func (s *service) Sell(ctx context.Context, userID, cropType string, quantity int) (*domain.Transaction, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellRequested, "userID", userID, "cropType", cropType, "quantity", quantity)

	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	def, ok := s.catalog.Get(cropType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCropType, cropType)
	}

	pricePerUnit := def.BaseValue
	if price, err := s.repo.GetPrice(ctx, cropType); err == nil {
		pricePerUnit = price.Price
	} else if !errors.Is(err, domain.ErrPriceNotFound) {
		return nil, fmt.Errorf("failed to get market price: %w", err)
	}

	transaction := &domain.Transaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		CropType:      cropType,
		Quantity:      quantity,
		PricePerUnit:  pricePerUnit,
		TotalEarnings: pricePerUnit * quantity,
		Kind:          domain.TransactionSell,
		CreatedAt:     s.now(),
	}

	if err := s.walletRepo.AdjustCoins(ctx, userID, transaction.TotalEarnings); err != nil {
		return nil, fmt.Errorf("failed to credit seller: %w", err)
	}
	if err := s.txLog.RecordTransaction(ctx, transaction); err != nil {
		// Coins are already credited; do not fail the sale over the ledger row.
		log.Error("Failed to record transaction", "transactionID", transaction.ID, "error", err)
	}

	metrics.ProduceSold.WithLabelValues(cropType).Add(float64(quantity))
	metrics.SaleEarnings.WithLabelValues(cropType).Add(float64(transaction.TotalEarnings))
	s.publish(ctx, event.NewProduceSoldEvent(transaction))

	log.Info(LogMsgSellSucceeded, "transactionID", transaction.ID, "earnings", transaction.TotalEarnings)
	return transaction, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "type", e.Type, "error", err)
	}
}
