package reward

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
)

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

func TestGrantDailyRewards(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("grants every user", func(t *testing.T) {
		wallets := new(MockWalletRepository)
		notifications := new(MockNotificationRepository)
		bus := new(MockBus)

		wallets.On("ListUserIDs", ctx).Return([]string{"user-1", "user-2", "user-3"}, nil)
		for _, id := range []string{"user-1", "user-2", "user-3"} {
			wallets.On("AdjustCoins", ctx, id, DailyRewardAmount).Return(nil)
		}
		notifications.On("CreateNotification", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(wallets, notifications, bus)
		summary, err := svc.GrantDailyRewards(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Granted)
		assert.Equal(t, 0, summary.Failed)
		wallets.AssertExpectations(t)
		notifications.AssertNumberOfCalls(t, "CreateNotification", 3)
	})

	t.Run("notification content", func(t *testing.T) {
		wallets := new(MockWalletRepository)
		notifications := new(MockNotificationRepository)
		bus := new(MockBus)

		wallets.On("ListUserIDs", ctx).Return([]string{"user-1"}, nil)
		wallets.On("AdjustCoins", ctx, "user-1", DailyRewardAmount).Return(nil)

		var got *domain.Notification
		notifications.On("CreateNotification", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				got = args.Get(1).(*domain.Notification)
			}).
			Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(wallets, notifications, bus)
		_, err := svc.GrantDailyRewards(ctx, now)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, NotificationTitle, got.Title)
		assert.Equal(t, fmt.Sprintf(NotificationMsgFormat, DailyRewardAmount), got.Message)
		assert.Equal(t, domain.NotificationReward, got.Kind)
		assert.Equal(t, "user-1", got.OwnerID)
		assert.Equal(t, now, got.CreatedAt)
	})

	t.Run("one failed wallet does not stop the pass", func(t *testing.T) {
		wallets := new(MockWalletRepository)
		notifications := new(MockNotificationRepository)
		bus := new(MockBus)

		wallets.On("ListUserIDs", ctx).Return([]string{"user-1", "user-2"}, nil)
		wallets.On("AdjustCoins", ctx, "user-1", DailyRewardAmount).Return(assert.AnError)
		wallets.On("AdjustCoins", ctx, "user-2", DailyRewardAmount).Return(nil)
		notifications.On("CreateNotification", ctx, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(wallets, notifications, bus)
		summary, err := svc.GrantDailyRewards(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Granted)
		assert.Equal(t, 1, summary.Failed)
	})

	t.Run("list failure aborts", func(t *testing.T) {
		wallets := new(MockWalletRepository)
		wallets.On("ListUserIDs", ctx).Return(nil, assert.AnError)

		svc := NewService(wallets, nil, nil)
		_, err := svc.GrantDailyRewards(ctx, now)

		require.Error(t, err)
	})
}
