package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmverse/farmverse/internal/domain"
)

// WalletRepository implements the wallet repository for PostgreSQL
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetUser retrieves a user's wallet view
func (r *WalletRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, username, coins, experience, created_at, updated_at
		 FROM users WHERE user_id = $1`, userID).
		Scan(&u.ID, &u.Username, &u.Coins, &u.Experience, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListUserIDs retrieves every known user ID
func (r *WalletRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return ids, nil
}

// AdjustCoins applies an atomic coin delta. A debit below zero fails with
// ErrInsufficientFunds and leaves the balance unchanged.
func (r *WalletRepository) AdjustCoins(ctx context.Context, userID string, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET coins = coins + $2, updated_at = NOW() WHERE user_id = $1`,
		userID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to adjust coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AdjustExperience applies an atomic experience delta
func (r *WalletRepository) AdjustExperience(ctx context.Context, userID string, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET experience = experience + $2, updated_at = NOW() WHERE user_id = $1`,
		userID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
