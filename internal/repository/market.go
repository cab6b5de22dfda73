package repository

import (
	"context"

	"github.com/farmverse/farmverse/internal/domain"
)

// Market defines the interface for market price persistence.
type Market interface {
	// GetPrice returns the current price for a crop type, or
	// domain.ErrPriceNotFound when no price has been recorded yet.
	GetPrice(ctx context.Context, cropType string) (*domain.MarketPrice, error)
	GetAllPrices(ctx context.Context) ([]domain.MarketPrice, error)

	// ApplyTick commits one simulator tick: upserts every crop type's new
	// price and appends one history snapshot, as a single batch.
	ApplyTick(ctx context.Context, prices []domain.MarketPrice, snapshot domain.MarketSnapshot) error

	// RecentHistory returns up to n snapshots ordered newest-first.
	RecentHistory(ctx context.Context, n int) ([]domain.MarketSnapshot, error)
}
