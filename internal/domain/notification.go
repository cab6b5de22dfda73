package domain

import "time"

// NotificationKind distinguishes why a notification was emitted.
type NotificationKind string

const (
	NotificationGrowth  NotificationKind = "growth"
	NotificationHarvest NotificationKind = "harvest"
	NotificationReward  NotificationKind = "reward"
)

// Notification is a message to a player, emitted by the engine as a side
// effect of stage transitions, harvest readiness and daily rewards.
// Delivery and read state belong to the notification store.
type Notification struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	CropID    string           `json:"crop_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
