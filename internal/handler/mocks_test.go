package handler_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/farm"
)

// MockFarmService implements farm.Service for testing
type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) Plant(ctx context.Context, ownerID, cropType string, position domain.Position) (*domain.Crop, error) {
	args := m.Called(ctx, ownerID, cropType, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockFarmService) Harvest(ctx context.Context, ownerID, cropID string) (*domain.HarvestResult, error) {
	args := m.Called(ctx, ownerID, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResult), args.Error(1)
}

func (m *MockFarmService) ListCrops(ctx context.Context, ownerID string) ([]domain.Crop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockFarmService) ReconcileAll(ctx context.Context, now time.Time) (*farm.ReconcileSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.ReconcileSummary), args.Error(1)
}

// MockMarketService implements market.Service for testing
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) Tick(ctx context.Context, now time.Time) ([]domain.MarketPrice, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketService) GetPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketService) GetTrend(ctx context.Context, cropType string) (domain.Trend, error) {
	args := m.Called(ctx, cropType)
	return args.Get(0).(domain.Trend), args.Error(1)
}

func (m *MockMarketService) History(ctx context.Context, n int) ([]domain.MarketSnapshot, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketSnapshot), args.Error(1)
}

func (m *MockMarketService) Sell(ctx context.Context, userID, cropType string, quantity int) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, cropType, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// MockNotificationRepository implements repository.Notification for testing
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, ownerID, notificationID string) error {
	args := m.Called(ctx, ownerID, notificationID)
	return args.Error(0)
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
