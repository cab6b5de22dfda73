package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farmverse/farmverse/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	CropPlanted      Type = "crop.planted"
	CropStageChanged Type = "crop.stage_changed"
	CropReady        Type = "crop.ready"
	CropHarvested    Type = "crop.harvested"
	MarketTicked     Type = "market.ticked"
	ProduceSold      Type = "market.produce_sold"
	DailyRewardPaid  Type = "reward.daily_paid"
)

// Typed event payloads for type safety

// CropPlantedPayloadV1 is the typed payload for crop planted events
type CropPlantedPayloadV1 struct {
	CropID    string `json:"crop_id"`
	OwnerID   string `json:"owner_id"`
	CropType  string `json:"crop_type"`
	Cost      int    `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}

// CropStagePayloadV1 is the typed payload for stage-change and ready events
type CropStagePayloadV1 struct {
	CropID    string `json:"crop_id"`
	OwnerID   string `json:"owner_id"`
	CropType  string `json:"crop_type"`
	Stage     string `json:"stage"`
	Timestamp int64  `json:"timestamp"`
}

// CropHarvestedPayloadV1 is the typed payload for harvest events
type CropHarvestedPayloadV1 struct {
	CropID     string `json:"crop_id"`
	OwnerID    string `json:"owner_id"`
	CropType   string `json:"crop_type"`
	Payout     int    `json:"payout"`
	Experience int    `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// MarketTickedPayloadV1 is the typed payload for market tick events
type MarketTickedPayloadV1 struct {
	Prices    map[string]int `json:"prices"`
	Timestamp int64          `json:"timestamp"`
}

// DailyRewardPayloadV1 is the typed payload for daily reward events
type DailyRewardPayloadV1 struct {
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// ProduceSoldPayloadV1 is the typed payload for sell events
type ProduceSoldPayloadV1 struct {
	UserID        string `json:"user_id"`
	CropType      string `json:"crop_type"`
	Quantity      int    `json:"quantity"`
	TotalEarnings int    `json:"total_earnings"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCropPlantedEvent creates a new crop planted event
func NewCropPlantedEvent(crop *domain.Crop, cost int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropPlanted,
		Payload: CropPlantedPayloadV1{
			CropID:    crop.ID,
			OwnerID:   crop.OwnerID,
			CropType:  crop.CropType,
			Cost:      cost,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCropStageChangedEvent creates a new stage-change event
func NewCropStageChangedEvent(crop domain.Crop, stage domain.GrowthStage) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropStageChanged,
		Payload: CropStagePayloadV1{
			CropID:    crop.ID,
			OwnerID:   crop.OwnerID,
			CropType:  crop.CropType,
			Stage:     string(stage),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCropReadyEvent creates a new harvest-readiness event
func NewCropReadyEvent(crop domain.Crop) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropReady,
		Payload: CropStagePayloadV1{
			CropID:    crop.ID,
			OwnerID:   crop.OwnerID,
			CropType:  crop.CropType,
			Stage:     string(domain.StageReady),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCropHarvestedEvent creates a new harvest event
func NewCropHarvestedEvent(crop *domain.Crop, payout, experience int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: CropHarvestedPayloadV1{
			CropID:     crop.ID,
			OwnerID:    crop.OwnerID,
			CropType:   crop.CropType,
			Payout:     payout,
			Experience: experience,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewMarketTickedEvent creates a new market tick event
func NewMarketTickedEvent(prices []domain.MarketPrice) Event {
	byType := make(map[string]int, len(prices))
	for _, p := range prices {
		byType[p.CropType] = p.Price
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketTicked,
		Payload: MarketTickedPayloadV1{
			Prices:    byType,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewProduceSoldEvent creates a new sell event
func NewProduceSoldEvent(transaction *domain.Transaction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProduceSold,
		Payload: ProduceSoldPayloadV1{
			UserID:        transaction.UserID,
			CropType:      transaction.CropType,
			Quantity:      transaction.Quantity,
			TotalEarnings: transaction.TotalEarnings,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewDailyRewardPaidEvent creates a new daily reward event
func NewDailyRewardPaidEvent(userID string, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyRewardPaid,
		Payload: DailyRewardPayloadV1{
			UserID:    userID,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
