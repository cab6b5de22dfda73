package metrics

import (
	"context"

	"github.com/farmverse/farmverse/internal/event"
)

// NewEventObserver returns a handler that counts published events.
// Register it for every event type the engine emits.
func NewEventObserver() event.Handler {
	return func(ctx context.Context, e event.Event) error {
		EventsPublished.WithLabelValues(string(e.Type)).Inc()
		return nil
	}
}

// RegisterEventObservers wires the event counter to all engine event types.
func RegisterEventObservers(bus event.Bus) {
	observer := NewEventObserver()
	for _, t := range []event.Type{
		event.CropPlanted,
		event.CropStageChanged,
		event.CropReady,
		event.CropHarvested,
		event.MarketTicked,
		event.ProduceSold,
		event.DailyRewardPaid,
	} {
		bus.Subscribe(t, observer)
	}
}
