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

// WalletRepository implements the wallet repository for Firestore
type WalletRepository struct {
	client *firestore.Client
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(client *firestore.Client) *WalletRepository {
	return &WalletRepository{client: client}
}

// GetUser retrieves a user's wallet view
func (r *WalletRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	snap, err := r.client.Collection(CollectionUsers).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return doc.toDomain(snap.Ref.ID), nil
}

// ListUserIDs retrieves every known user ID
func (r *WalletRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(CollectionUsers).Documents(ctx)
	defer iter.Stop()

	ids := []string{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}
		ids = append(ids, snap.Ref.ID)
	}
	return ids, nil
}

// AdjustCoins applies an atomic coin delta. A debit below zero fails with
// ErrInsufficientFunds and leaves the balance unchanged.
func (r *WalletRepository) AdjustCoins(ctx context.Context, userID string, delta int) error {
	ref := r.client.Collection(CollectionUsers).Doc(userID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		var user userDoc
		if err := snap.DataTo(&user); err != nil {
			return fmt.Errorf("failed to decode user: %w", err)
		}
		if user.Coins+delta < 0 {
			return domain.ErrInsufficientFunds
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "coins", Value: user.Coins + delta},
			{Path: "updatedAt", Value: time.Now().UTC()},
		})
	})
}

// AdjustExperience applies an atomic experience delta
func (r *WalletRepository) AdjustExperience(ctx context.Context, userID string, delta int) error {
	ref := r.client.Collection(CollectionUsers).Doc(userID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		var user userDoc
		if err := snap.DataTo(&user); err != nil {
			return fmt.Errorf("failed to decode user: %w", err)
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "experience", Value: user.Experience + delta},
			{Path: "updatedAt", Value: time.Now().UTC()},
		})
	})
	return err
}
