package market

import (
	"context"
	"math/rand"
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
	"corn": {
		Name:           "corn",
		DisplayName:    "Corn",
		GrowthDuration: 3 * time.Hour,
		BaseValue:      150,
		Cost:           75,
		Fluctuation:    0.25,
	},
}

func newTestService(t *testing.T, repo repository.Market, wallets repository.Wallet, txLog repository.TransactionLog, bus event.Bus) *service {
	t.Helper()
	svc, ok := NewService(testCatalog, repo, wallets, txLog, bus).(*service)
	require.True(t, ok)
	return svc
}

func TestTick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("midpoint draw returns base values", func(t *testing.T) {
		repo := new(MockMarketRepository)
		bus := new(MockBus)

		var gotPrices []domain.MarketPrice
		var gotSnapshot domain.MarketSnapshot
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotPrices = args.Get(1).([]domain.MarketPrice)
				gotSnapshot = args.Get(2).(domain.MarketSnapshot)
			}).
			Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, nil, nil, bus)
		svc.rnd = func() float64 { return 0.5 } // factor = 1.0

		prices, err := svc.Tick(ctx, now)

		require.NoError(t, err)
		require.Len(t, prices, 2)
		byType := make(map[string]int)
		for _, p := range prices {
			assert.Equal(t, now, p.UpdatedAt)
			byType[p.CropType] = p.Price
		}
		assert.Equal(t, 100, byType["wheat"])
		assert.Equal(t, 150, byType["corn"])

		assert.Equal(t, gotPrices, prices)
		assert.Equal(t, now, gotSnapshot.Timestamp)
		assert.Equal(t, map[string]int{"wheat": 100, "corn": 150}, gotSnapshot.Prices)
	})

	t.Run("extreme draws hit the band edges", func(t *testing.T) {
		repo := new(MockMarketRepository)
		bus := new(MockBus)
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, nil, nil, bus)

		svc.rnd = func() float64 { return 0 } // factor = 1 - fluctuation
		prices, err := svc.Tick(ctx, now)
		require.NoError(t, err)
		for _, p := range prices {
			switch p.CropType {
			case "wheat":
				assert.Equal(t, 70, p.Price)
			case "corn":
				assert.Equal(t, 113, p.Price) // round(150 * 0.75)
			}
		}

		svc.rnd = func() float64 { return 1 } // factor = 1 + fluctuation
		prices, err = svc.Tick(ctx, now)
		require.NoError(t, err)
		for _, p := range prices {
			switch p.CropType {
			case "wheat":
				assert.Equal(t, 130, p.Price)
			case "corn":
				assert.Equal(t, 188, p.Price) // round(150 * 1.25)
			}
		}
	})

	t.Run("random draws stay within the band", func(t *testing.T) {
		repo := new(MockMarketRepository)
		bus := new(MockBus)
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, nil, nil, bus)
		rng := rand.New(rand.NewSource(42)) //nolint:gosec
		svc.rnd = rng.Float64

		for i := 0; i < 10000; i++ {
			prices, err := svc.Tick(ctx, now)
			require.NoError(t, err)
			for _, p := range prices {
				switch p.CropType {
				case "wheat":
					assert.GreaterOrEqual(t, p.Price, 70)
					assert.LessOrEqual(t, p.Price, 130)
				case "corn":
					assert.GreaterOrEqual(t, p.Price, 113)
					assert.LessOrEqual(t, p.Price, 188)
				}
			}
		}
	})

	t.Run("price never drops below the floor", func(t *testing.T) {
		repo := new(MockMarketRepository)
		bus := new(MockBus)
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, nil, nil, bus)
		svc.catalog = domain.Catalog{
			"weed": {Name: "weed", BaseValue: 1, Fluctuation: 0.9},
		}
		svc.rnd = func() float64 { return 0 } // round(1 * 0.1) = 0, floored to 1

		prices, err := svc.Tick(ctx, now)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.Equal(t, MinPrice, prices[0].Price)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := new(MockMarketRepository)
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

		svc := newTestService(t, repo, nil, nil, nil)
		_, err := svc.Tick(ctx, now)

		require.Error(t, err)
	})
}

func TestGetPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("caches between calls", func(t *testing.T) {
		repo := new(MockMarketRepository)
		want := []domain.MarketPrice{{CropType: "wheat", Price: 110}}
		repo.On("GetAllPrices", ctx).Return(want, nil).Once()

		svc := newTestService(t, repo, nil, nil, nil)

		got, err := svc.GetPrices(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = svc.GetPrices(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertNumberOfCalls(t, "GetAllPrices", 1)
	})

	t.Run("tick invalidates the cache", func(t *testing.T) {
		repo := new(MockMarketRepository)
		bus := new(MockBus)
		repo.On("GetAllPrices", ctx).Return([]domain.MarketPrice{{CropType: "wheat", Price: 110}}, nil)
		repo.On("ApplyTick", ctx, mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, nil, nil, bus)
		svc.rnd = func() float64 { return 0.5 }

		_, err := svc.GetPrices(ctx)
		require.NoError(t, err)

		_, err = svc.Tick(ctx, time.Now())
		require.NoError(t, err)

		_, err = svc.GetPrices(ctx)
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "GetAllPrices", 2)
	})
}

func TestGetTrend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := func(latest, previous int) []domain.MarketSnapshot {
		return []domain.MarketSnapshot{
			{Timestamp: now, Prices: map[string]int{"wheat": latest}},
			{Timestamp: now.Add(-6 * time.Hour), Prices: map[string]int{"wheat": previous}},
		}
	}

	tests := []struct {
		name     string
		history  []domain.MarketSnapshot
		expected domain.Trend
	}{
		{"rise above threshold", history(106, 100), domain.TrendIncreasing},
		{"rise exactly at threshold", history(105, 100), domain.TrendIncreasing},
		{"rise just under threshold", history(104, 100), domain.TrendStable},
		{"drop exactly at threshold", history(95, 100), domain.TrendDecreasing},
		{"drop just under threshold", history(96, 100), domain.TrendStable},
		{"unchanged", history(100, 100), domain.TrendStable},
		{"single snapshot", history(100, 100)[:1], domain.TrendStable},
		{"no history", nil, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMarketRepository)
			repo.On("RecentHistory", ctx, TrendWindow).Return(tt.history, nil)

			svc := newTestService(t, repo, nil, nil, nil)
			trend, err := svc.GetTrend(ctx, "wheat")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, trend)
		})
	}

	t.Run("unknown crop type", func(t *testing.T) {
		svc := newTestService(t, nil, nil, nil, nil)
		_, err := svc.GetTrend(ctx, "pumpkin")
		assert.ErrorIs(t, err, domain.ErrUnknownCropType)
	})
}

func TestSell(t *testing.T) {
	ctx := context.Background()

	t.Run("sells at current market price", func(t *testing.T) {
		repo := new(MockMarketRepository)
		wallets := new(MockWalletRepository)
		txLog := new(MockTransactionLog)
		bus := new(MockBus)

		repo.On("GetPrice", ctx, "wheat").Return(&domain.MarketPrice{CropType: "wheat", Price: 120}, nil)
		wallets.On("AdjustCoins", ctx, "user-1", 360).Return(nil)
		txLog.On("RecordTransaction", ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, wallets, txLog, bus)
		transaction, err := svc.Sell(ctx, "user-1", "wheat", 3)

		require.NoError(t, err)
		assert.Equal(t, 120, transaction.PricePerUnit)
		assert.Equal(t, 360, transaction.TotalEarnings)
		assert.Equal(t, domain.TransactionSell, transaction.Kind)
		wallets.AssertExpectations(t)
		txLog.AssertExpectations(t)
	})

	t.Run("falls back to base value", func(t *testing.T) {
		repo := new(MockMarketRepository)
		wallets := new(MockWalletRepository)
		txLog := new(MockTransactionLog)
		bus := new(MockBus)

		repo.On("GetPrice", ctx, "wheat").Return(nil, domain.ErrPriceNotFound)
		wallets.On("AdjustCoins", ctx, "user-1", 100).Return(nil)
		txLog.On("RecordTransaction", ctx, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(t, repo, wallets, txLog, bus)
		transaction, err := svc.Sell(ctx, "user-1", "wheat", 1)

		require.NoError(t, err)
		assert.Equal(t, 100, transaction.TotalEarnings)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc := newTestService(t, nil, nil, nil, nil)

		_, err := svc.Sell(ctx, "user-1", "wheat", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Sell(ctx, "user-1", "wheat", -2)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects unknown crop type", func(t *testing.T) {
		svc := newTestService(t, nil, nil, nil, nil)
		_, err := svc.Sell(ctx, "user-1", "pumpkin", 1)
		assert.ErrorIs(t, err, domain.ErrUnknownCropType)
	})

	t.Run("wallet failure aborts the sale", func(t *testing.T) {
		repo := new(MockMarketRepository)
		wallets := new(MockWalletRepository)
		txLog := new(MockTransactionLog)

		repo.On("GetPrice", ctx, "wheat").Return(&domain.MarketPrice{CropType: "wheat", Price: 120}, nil)
		wallets.On("AdjustCoins", ctx, "user-1", 120).Return(assert.AnError)

		svc := newTestService(t, repo, wallets, txLog, nil)
		_, err := svc.Sell(ctx, "user-1", "wheat", 1)

		require.Error(t, err)
		txLog.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything)
	})
}
