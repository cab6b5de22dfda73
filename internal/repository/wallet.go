package repository

import (
	"context"

	"github.com/farmverse/farmverse/internal/domain"
)

// Wallet defines the interface for user wallet persistence.
// Coin and experience adjustments must be atomic increments; concurrent
// adjustments to one wallet must not lose updates.
type Wallet interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	AdjustCoins(ctx context.Context, userID string, delta int) error
	AdjustExperience(ctx context.Context, userID string, delta int) error
}
