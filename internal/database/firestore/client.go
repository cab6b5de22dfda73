package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Collection names
const (
	CollectionUsers         = "users"
	CollectionCrops         = "crops"
	CollectionMarket        = "market"
	CollectionMarketHistory = "marketHistory"
	CollectionNotifications = "notifications"
	CollectionTransactions  = "transactions"
)

// NewClient initializes the Firebase app and returns a Firestore client.
// credentialsPath may be empty, in which case application default
// credentials are used.
func NewClient(ctx context.Context, projectID, credentialsPath string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return client, nil
}

// Health adapts a Firestore client to readiness checks.
type Health struct {
	client *firestore.Client
}

func NewHealth(client *firestore.Client) Health {
	return Health{client: client}
}

// CheckHealth verifies the backend is reachable by listing collections.
// An empty project is still healthy.
func (h Health) CheckHealth(ctx context.Context) error {
	_, err := h.client.Collections(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}
