package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/farmverse/farmverse/internal/domain"
)

// MarketRepository implements the market repository for Firestore
type MarketRepository struct {
	client *firestore.Client
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(client *firestore.Client) *MarketRepository {
	return &MarketRepository{client: client}
}

// GetPrice retrieves the current price for one crop type
func (r *MarketRepository) GetPrice(ctx context.Context, cropType string) (*domain.MarketPrice, error) {
	snap, err := r.client.Collection(CollectionMarket).Doc(cropType).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	var doc priceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode price: %w", err)
	}
	return &domain.MarketPrice{
		CropType:  snap.Ref.ID,
		Price:     doc.Price,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// GetAllPrices retrieves the full current price list
func (r *MarketRepository) GetAllPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	iter := r.client.Collection(CollectionMarket).Documents(ctx)
	defer iter.Stop()

	prices := []domain.MarketPrice{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate prices: %w", err)
		}
		var doc priceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode price: %w", err)
		}
		prices = append(prices, domain.MarketPrice{
			CropType:  snap.Ref.ID,
			Price:     doc.Price,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return prices, nil
}

// ApplyTick writes every price and the history snapshot atomically
func (r *MarketRepository) ApplyTick(ctx context.Context, prices []domain.MarketPrice, snapshot domain.MarketSnapshot) error {
	historyRef := r.client.Collection(CollectionMarketHistory).NewDoc()
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, p := range prices {
			ref := r.client.Collection(CollectionMarket).Doc(p.CropType)
			if err := tx.Set(ref, priceDoc{Price: p.Price, UpdatedAt: p.UpdatedAt}); err != nil {
				return fmt.Errorf("failed to set price for %s: %w", p.CropType, err)
			}
		}
		return tx.Create(historyRef, snapshotDoc{
			Timestamp: snapshot.Timestamp,
			Prices:    snapshot.Prices,
		})
	})
}

// RecentHistory retrieves up to n snapshots ordered newest-first
func (r *MarketRepository) RecentHistory(ctx context.Context, n int) ([]domain.MarketSnapshot, error) {
	iter := r.client.Collection(CollectionMarketHistory).
		OrderBy("timestamp", firestore.Desc).
		Limit(n).
		Documents(ctx)
	defer iter.Stop()

	snapshots := []domain.MarketSnapshot{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate history: %w", err)
		}
		var doc snapshotDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		snapshots = append(snapshots, domain.MarketSnapshot{
			Timestamp: doc.Timestamp,
			Prices:    doc.Prices,
		})
	}
	return snapshots, nil
}
