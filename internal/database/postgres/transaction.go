package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmverse/farmverse/internal/domain"
)

// TransactionRepository implements the transaction log for PostgreSQL
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// RecordTransaction appends one trade record
func (r *TransactionRepository) RecordTransaction(ctx context.Context, transaction *domain.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO transactions (transaction_id, user_id, crop_type, quantity, price_per_unit, total_earnings, kind, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.UserID, transaction.CropType, transaction.Quantity,
		transaction.PricePerUnit, transaction.TotalEarnings, string(transaction.Kind), transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

// ListTransactionsByUser retrieves a user's trades newest-first
func (r *TransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT transaction_id, user_id, crop_type, quantity, price_per_unit, total_earnings, kind, created_at
		 FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		var kind string
		if err := rows.Scan(&t.ID, &t.UserID, &t.CropType, &t.Quantity, &t.PricePerUnit, &t.TotalEarnings, &kind, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Kind = domain.TransactionKind(kind)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return transactions, nil
}
