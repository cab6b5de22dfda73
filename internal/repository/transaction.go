package repository

import (
	"context"

	"github.com/farmverse/farmverse/internal/domain"
)

// TransactionLog defines the interface for the append-only trade record.
type TransactionLog interface {
	RecordTransaction(ctx context.Context, transaction *domain.Transaction) error
	ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}
