package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/repository"
)

// DailyRewardAmount is the coin grant every user receives once per day.
const DailyRewardAmount = 50

// Notification content
const (
	NotificationTitle     = "Daily Reward!"
	NotificationMsgFormat = "You've received %d coins as your daily login reward."
)

// Log message constants
const (
	LogMsgGrantStarted  = "Daily reward grant started"
	LogMsgGrantFinished = "Daily reward grant finished"
	LogMsgGrantSkipped  = "Daily reward grant skipped for user"
)

// Summary reports one grant pass.
type Summary struct {
	Granted int `json:"granted"`
	Failed  int `json:"failed"`
}

// Service grants the daily login reward to every known user.
type Service interface {
	GrantDailyRewards(ctx context.Context, now time.Time) (*Summary, error)
}

type service struct {
	walletRepo       repository.Wallet
	notificationRepo repository.Notification
	bus              event.Bus
}

// NewService creates a new reward service.
func NewService(walletRepo repository.Wallet, notificationRepo repository.Notification, bus event.Bus) Service {
	return &service{
		walletRepo:       walletRepo,
		notificationRepo: notificationRepo,
		bus:              bus,
	}
}

func (s *service) GrantDailyRewards(ctx context.Context, now time.Time) (*Summary, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrantStarted, "now", now.Format(time.RFC3339))

	userIDs, err := s.walletRepo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summary := &Summary{}
	for _, userID := range userIDs {
		// One user's failure must not starve the rest of the grant.
		if err := s.grantOne(ctx, userID, now); err != nil {
			summary.Failed++
			log.Warn(LogMsgGrantSkipped, "userID", userID, "error", err)
			continue
		}
		summary.Granted++
	}

	log.Info(LogMsgGrantFinished, "granted", summary.Granted, "failed", summary.Failed)
	return summary, nil
}

func (s *service) grantOne(ctx context.Context, userID string, now time.Time) error {
	if err := s.walletRepo.AdjustCoins(ctx, userID, DailyRewardAmount); err != nil {
		return fmt.Errorf("failed to credit reward: %w", err)
	}

	notification := &domain.Notification{
		ID:        uuid.NewString(),
		OwnerID:   userID,
		Title:     NotificationTitle,
		Message:   fmt.Sprintf(NotificationMsgFormat, DailyRewardAmount),
		Kind:      domain.NotificationReward,
		CreatedAt: now,
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		// Coins are already granted; the notification is best-effort.
		logger.FromContext(ctx).Warn("Failed to create reward notification", "userID", userID, "error", err)
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewDailyRewardPaidEvent(userID, DailyRewardAmount)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish event", "type", event.DailyRewardPaid, "error", err)
		}
	}
	return nil
}
