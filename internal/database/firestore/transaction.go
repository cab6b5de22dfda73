package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/farmverse/farmverse/internal/domain"
)

// TransactionRepository implements the transaction log for Firestore
type TransactionRepository struct {
	client *firestore.Client
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(client *firestore.Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

// RecordTransaction appends one trade record
func (r *TransactionRepository) RecordTransaction(ctx context.Context, transaction *domain.Transaction) error {
	_, err := r.client.Collection(CollectionTransactions).Doc(transaction.ID).Create(ctx, transactionDoc{
		UserID:        transaction.UserID,
		CropType:      transaction.CropType,
		Quantity:      transaction.Quantity,
		PricePerUnit:  transaction.PricePerUnit,
		TotalEarnings: transaction.TotalEarnings,
		Kind:          string(transaction.Kind),
		CreatedAt:     transaction.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

// ListTransactionsByUser retrieves a user's trades newest-first
func (r *TransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	iter := r.client.Collection(CollectionTransactions).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	transactions := []domain.Transaction{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate transactions: %w", err)
		}
		var doc transactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode transaction: %w", err)
		}
		transactions = append(transactions, doc.toDomain(snap.Ref.ID))
	}
	return transactions, nil
}
