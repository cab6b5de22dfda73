package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/growth"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/metrics"
)

func (s *service) ReconcileAll(ctx context.Context, now time.Time) (*ReconcileSummary, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReconcileStarted, "now", now.Format(time.RFC3339))
	start := s.now()

	crops, err := s.cropRepo.ListGrowingCrops(ctx)
	if err != nil {
		metrics.ReconcilePasses.WithLabelValues(ResultError).Inc()
		log.Error(LogMsgReconcileFailed, "error", err)
		return nil, fmt.Errorf("failed to list growing crops: %w", err)
	}

	summary := &ReconcileSummary{Evaluated: len(crops)}
	var (
		updates       []domain.GrowthUpdate
		notifications []domain.Notification
		events        []event.Event
	)

	for _, crop := range crops {
		state := growth.At(crop.PlantedAt, crop.HarvestTime, now)
		if state.Stage == crop.Stage && state.Harvestable == crop.IsHarvestable {
			continue
		}
		// Stages only advance. A crop observed past a boundary never moves
		// back, so re-running the pass at the same instant is a no-op.
		if domain.StageIndex(state.Stage) < domain.StageIndex(crop.Stage) {
			continue
		}

		updates = append(updates, domain.GrowthUpdate{
			CropID:        crop.ID,
			Stage:         state.Stage,
			IsHarvestable: state.Harvestable,
		})
		summary.StageChanges++

		// At most one notification per crop per pass, ready winning over a
		// plain stage advance.
		switch {
		case state.Harvestable && !crop.IsHarvestable:
			summary.BecameReady++
			notifications = append(notifications, s.readyNotification(crop, now))
			events = append(events, event.NewCropReadyEvent(crop))
		case state.Stage != crop.Stage:
			notifications = append(notifications, s.stageNotification(crop, state.Stage, now))
			events = append(events, event.NewCropStageChangedEvent(crop, state.Stage))
		}
	}
	summary.Notifications = len(notifications)

	if len(updates) > 0 {
		if err := s.cropRepo.ApplyGrowthPass(ctx, updates, notifications); err != nil {
			metrics.ReconcilePasses.WithLabelValues(ResultError).Inc()
			log.Error(LogMsgReconcileFailed, "error", err)
			return nil, fmt.Errorf("failed to apply growth pass: %w", err)
		}
	}

	// Events go out only after the batch is durable.
	for _, e := range events {
		s.publish(ctx, e)
	}
	for _, n := range notifications {
		metrics.NotificationsEmitted.WithLabelValues(string(n.Kind)).Inc()
	}

	metrics.ReconcilePasses.WithLabelValues(ResultOK).Inc()
	metrics.ReconcileUpdates.Add(float64(len(updates)))
	metrics.ReconcileDuration.Observe(s.now().Sub(start).Seconds())

	log.Info(LogMsgReconcileFinished,
		"evaluated", summary.Evaluated,
		"stageChanges", summary.StageChanges,
		"becameReady", summary.BecameReady,
		"notifications", summary.Notifications,
	)
	return summary, nil
}

func (s *service) readyNotification(crop domain.Crop, now time.Time) domain.Notification {
	return domain.Notification{
		ID:        uuid.NewString(),
		OwnerID:   crop.OwnerID,
		Title:     NotificationTitleReady,
		Message:   fmt.Sprintf(NotificationMsgReadyFormat, s.displayName(crop.CropType)),
		Kind:      domain.NotificationHarvest,
		CropID:    crop.ID,
		CreatedAt: now,
	}
}

func (s *service) stageNotification(crop domain.Crop, stage domain.GrowthStage, now time.Time) domain.Notification {
	return domain.Notification{
		ID:        uuid.NewString(),
		OwnerID:   crop.OwnerID,
		Title:     NotificationTitleUpdate,
		Message:   fmt.Sprintf(NotificationMsgUpdateFormat, s.displayName(crop.CropType), stage),
		Kind:      domain.NotificationGrowth,
		CropID:    crop.ID,
		CreatedAt: now,
	}
}

func (s *service) displayName(cropType string) string {
	if def, ok := s.catalog.Get(cropType); ok {
		return def.DisplayName
	}
	return cropType
}
