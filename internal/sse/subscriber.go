package sse

import (
	"context"
	"log/slog"

	"github.com/farmverse/farmverse/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub. Every simulation
// event published on the bus is rebroadcast to connected clients with the
// bus topic as the SSE event type and the typed payload passed through
// unchanged.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all simulation event types.
func (s *Subscriber) Subscribe() {
	topics := []event.Type{
		event.CropPlanted,
		event.CropStageChanged,
		event.CropReady,
		event.CropHarvested,
		event.MarketTicked,
		event.ProduceSold,
		event.DailyRewardPaid,
	}

	for _, topic := range topics {
		s.bus.Subscribe(topic, s.forward)
	}

	names := make([]string, 0, len(topics))
	for _, topic := range topics {
		names = append(names, string(topic))
	}
	slog.Info(LogMsgSubscriberRegistered, "types", names)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"clients", s.hub.ClientCount())

	return nil
}
