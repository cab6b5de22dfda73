package market

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
)

// MockMarketRepository implements repository.Market for testing
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) GetPrice(ctx context.Context, cropType string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, cropType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockMarketRepository) GetAllPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketRepository) ApplyTick(ctx context.Context, prices []domain.MarketPrice, snapshot domain.MarketSnapshot) error {
	args := m.Called(ctx, prices, snapshot)
	return args.Error(0)
}

func (m *MockMarketRepository) RecentHistory(ctx context.Context, n int) ([]domain.MarketSnapshot, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketSnapshot), args.Error(1)
}

// MockWalletRepository implements repository.Wallet for testing
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockWalletRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWalletRepository) AdjustCoins(ctx context.Context, userID string, delta int) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockWalletRepository) AdjustExperience(ctx context.Context, userID string, delta int) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

// MockTransactionLog implements repository.TransactionLog for testing
type MockTransactionLog struct {
	mock.Mock
}

func (m *MockTransactionLog) RecordTransaction(ctx context.Context, transaction *domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionLog) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockBus implements event.Bus for testing
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
