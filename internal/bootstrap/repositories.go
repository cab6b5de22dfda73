package bootstrap

import (
	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"

	fsrepo "github.com/farmverse/farmverse/internal/database/firestore"
	"github.com/farmverse/farmverse/internal/database/postgres"
	"github.com/farmverse/farmverse/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Crop         repository.Crop
	Wallet       repository.Wallet
	Market       repository.Market
	Notification repository.Notification
	Transactions repository.TransactionLog
}

// InitializePostgresRepositories creates the Postgres-backed repository set.
func InitializePostgresRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Crop:         postgres.NewCropRepository(dbPool),
		Wallet:       postgres.NewWalletRepository(dbPool),
		Market:       postgres.NewMarketRepository(dbPool),
		Notification: postgres.NewNotificationRepository(dbPool),
		Transactions: postgres.NewTransactionRepository(dbPool),
	}
}

// InitializeFirestoreRepositories creates the Firestore-backed repository set.
func InitializeFirestoreRepositories(client *firestore.Client) *Repositories {
	return &Repositories{
		Crop:         fsrepo.NewCropRepository(client),
		Wallet:       fsrepo.NewWalletRepository(client),
		Market:       fsrepo.NewMarketRepository(client),
		Notification: fsrepo.NewNotificationRepository(client),
		Transactions: fsrepo.NewTransactionRepository(client),
	}
}
