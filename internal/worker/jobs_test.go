package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmverse/farmverse/internal/domain"
	"github.com/farmverse/farmverse/internal/farm"
)

// blockingFarmService counts ReconcileAll calls and holds each one until
// released.
type blockingFarmService struct {
	calls   int32
	release chan struct{}
}

func (s *blockingFarmService) Plant(ctx context.Context, ownerID, cropType string, position domain.Position) (*domain.Crop, error) {
	return nil, nil
}

func (s *blockingFarmService) Harvest(ctx context.Context, ownerID, cropID string) (*domain.HarvestResult, error) {
	return nil, nil
}

func (s *blockingFarmService) ListCrops(ctx context.Context, ownerID string) ([]domain.Crop, error) {
	return nil, nil
}

func (s *blockingFarmService) ReconcileAll(ctx context.Context, now time.Time) (*farm.ReconcileSummary, error) {
	atomic.AddInt32(&s.calls, 1)
	<-s.release
	return &farm.ReconcileSummary{}, nil
}

func TestGrowthReconcileJob_SkipsOverlappingRuns(t *testing.T) {
	svc := &blockingFarmService{release: make(chan struct{})}
	job := NewGrowthReconcileJob(svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, job.Process(context.Background()))
	}()

	// Wait until the first run is inside the service.
	for atomic.LoadInt32(&svc.calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	// Second run while the first is still in flight is a no-op.
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&svc.calls))

	close(svc.release)
	wg.Wait()

	// With the first run finished the job runs again.
	svc.release = make(chan struct{})
	close(svc.release)
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&svc.calls))
}
