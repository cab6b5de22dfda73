package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/farmverse/farmverse/internal/market"
	"github.com/farmverse/farmverse/internal/repository"
)

// EnsureMarketPrices runs one simulator tick at startup when the price table
// is empty, so harvest and sell payouts never have to fall back to catalog
// base values on a fresh install. An already-seeded market is left alone;
// the scheduler owns subsequent ticks.
func EnsureMarketPrices(ctx context.Context, marketSvc market.Service, marketRepo repository.Market) error {
	prices, err := marketRepo.GetAllPrices(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCheckPrices, err)
	}

	if len(prices) > 0 {
		slog.Info(LogMsgMarketAlreadySeeded, "crop_types", len(prices))
		return nil
	}

	seeded, err := marketSvc.Tick(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedPrices, err)
	}

	slog.Info(LogMsgMarketSeeded, "crop_types", len(seeded))
	return nil
}
