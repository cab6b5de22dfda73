package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmverse/farmverse/internal/domain"
)

// MarketRepository implements the market repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// GetPrice retrieves the current price for one crop type
func (r *MarketRepository) GetPrice(ctx context.Context, cropType string) (*domain.MarketPrice, error) {
	var p domain.MarketPrice
	err := r.db.QueryRow(ctx,
		`SELECT crop_type, price, updated_at FROM market_prices WHERE crop_type = $1`, cropType).
		Scan(&p.CropType, &p.Price, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	return &p, nil
}

// GetAllPrices retrieves the full current price list
func (r *MarketRepository) GetAllPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT crop_type, price, updated_at FROM market_prices ORDER BY crop_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	defer rows.Close()

	prices := []domain.MarketPrice{}
	for rows.Next() {
		var p domain.MarketPrice
		if err := rows.Scan(&p.CropType, &p.Price, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prices: %w", err)
	}
	return prices, nil
}

// ApplyTick upserts every price and appends the history snapshot in one
// transaction
func (r *MarketRepository) ApplyTick(ctx context.Context, prices []domain.MarketPrice, snapshot domain.MarketSnapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, p := range prices {
		batch.Queue(
			`INSERT INTO market_prices (crop_type, price, updated_at)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (crop_type) DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`,
			p.CropType, p.Price, p.UpdatedAt)
	}

	snapshotJSON, err := json.Marshal(snapshot.Prices)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	batch.Queue(
		`INSERT INTO market_history (snapshot_at, prices) VALUES ($1, $2)`,
		snapshot.Timestamp, snapshotJSON)

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to apply tick batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close tick batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tick: %w", err)
	}
	return nil
}

// RecentHistory retrieves up to n snapshots ordered newest-first
func (r *MarketRepository) RecentHistory(ctx context.Context, n int) ([]domain.MarketSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT snapshot_at, prices FROM market_history ORDER BY snapshot_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.MarketSnapshot{}
	for rows.Next() {
		var s domain.MarketSnapshot
		var pricesJSON []byte
		if err := rows.Scan(&s.Timestamp, &pricesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if err := json.Unmarshal(pricesJSON, &s.Prices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return snapshots, nil
}
