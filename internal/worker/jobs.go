package worker

import (
	"context"
	"sync"
	"time"

	"github.com/farmverse/farmverse/internal/farm"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/market"
	"github.com/farmverse/farmverse/internal/reward"
)

// GrowthReconcileJob runs one growth reconciliation pass. If the previous
// pass is still running when the next interval fires, the new run is
// skipped instead of stacked.
type GrowthReconcileJob struct {
	service farm.Service
	running sync.Mutex
}

// NewGrowthReconcileJob creates a new growth reconcile job.
func NewGrowthReconcileJob(service farm.Service) *GrowthReconcileJob {
	return &GrowthReconcileJob{service: service}
}

func (j *GrowthReconcileJob) Process(ctx context.Context) error {
	if !j.running.TryLock() {
		logger.FromContext(ctx).Warn(LogMsgReconcileJobSkipped)
		return nil
	}
	defer j.running.Unlock()

	_, err := j.service.ReconcileAll(ctx, time.Now())
	return err
}

// MarketTickJob runs one market simulator tick.
type MarketTickJob struct {
	service market.Service
	running sync.Mutex
}

// NewMarketTickJob creates a new market tick job.
func NewMarketTickJob(service market.Service) *MarketTickJob {
	return &MarketTickJob{service: service}
}

func (j *MarketTickJob) Process(ctx context.Context) error {
	if !j.running.TryLock() {
		logger.FromContext(ctx).Warn(LogMsgMarketTickJobSkipped)
		return nil
	}
	defer j.running.Unlock()

	_, err := j.service.Tick(ctx, time.Now())
	return err
}

// DailyRewardJob grants the daily login reward to all users.
type DailyRewardJob struct {
	service reward.Service
	running sync.Mutex
}

// NewDailyRewardJob creates a new daily reward job.
func NewDailyRewardJob(service reward.Service) *DailyRewardJob {
	return &DailyRewardJob{service: service}
}

func (j *DailyRewardJob) Process(ctx context.Context) error {
	if !j.running.TryLock() {
		logger.FromContext(ctx).Warn(LogMsgDailyRewardJobSkipped)
		return nil
	}
	defer j.running.Unlock()

	_, err := j.service.GrantDailyRewards(ctx, time.Now())
	return err
}
