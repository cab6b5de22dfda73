package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmverse/farmverse/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(CropReady, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	crop := domain.Crop{ID: "c1", OwnerID: "u1", CropType: "wheat"}
	err := bus.Publish(context.Background(), NewCropReadyEvent(crop))
	assert.NoError(t, err)
	assert.Len(t, received, 1)

	payload, ok := received[0].Payload.(CropStagePayloadV1)
	assert.True(t, ok)
	assert.Equal(t, "c1", payload.CropID)
	assert.Equal(t, string(domain.StageReady), payload.Stage)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewMarketTickedEvent(nil))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(MarketTicked, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(MarketTicked, func(ctx context.Context, e Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), NewMarketTickedEvent([]domain.MarketPrice{{CropType: "wheat", Price: 100}}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
}
