package firestore

import (
	"time"

	"github.com/farmverse/farmverse/internal/domain"
)

// cropDoc is the Firestore document shape for a crop.
type cropDoc struct {
	OwnerID       string    `firestore:"ownerId"`
	CropType      string    `firestore:"cropType"`
	PositionX     int       `firestore:"positionX"`
	PositionY     int       `firestore:"positionY"`
	PlantedAt     time.Time `firestore:"plantedAt"`
	HarvestTime   time.Time `firestore:"harvestTime"`
	Stage         string    `firestore:"stage"`
	IsHarvestable bool      `firestore:"isHarvestable"`
	CreatedAt     time.Time `firestore:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

func (d cropDoc) toDomain(id string) domain.Crop {
	return domain.Crop{
		ID:            id,
		OwnerID:       d.OwnerID,
		CropType:      d.CropType,
		Position:      domain.Position{X: d.PositionX, Y: d.PositionY},
		PlantedAt:     d.PlantedAt,
		HarvestTime:   d.HarvestTime,
		Stage:         domain.GrowthStage(d.Stage),
		IsHarvestable: d.IsHarvestable,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toCropDoc(crop *domain.Crop) cropDoc {
	return cropDoc{
		OwnerID:       crop.OwnerID,
		CropType:      crop.CropType,
		PositionX:     crop.Position.X,
		PositionY:     crop.Position.Y,
		PlantedAt:     crop.PlantedAt,
		HarvestTime:   crop.HarvestTime,
		Stage:         string(crop.Stage),
		IsHarvestable: crop.IsHarvestable,
		CreatedAt:     crop.CreatedAt,
		UpdatedAt:     crop.UpdatedAt,
	}
}

// userDoc is the Firestore document shape for a user's wallet view.
type userDoc struct {
	Username   string    `firestore:"username"`
	Coins      int       `firestore:"coins"`
	Experience int       `firestore:"experience"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

func (d userDoc) toDomain(id string) *domain.User {
	return &domain.User{
		ID:         id,
		Username:   d.Username,
		Coins:      d.Coins,
		Experience: d.Experience,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// priceDoc is the Firestore document shape for one market price. The
// document ID is the crop type.
type priceDoc struct {
	Price     int       `firestore:"price"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// snapshotDoc is the Firestore document shape for one history entry.
type snapshotDoc struct {
	Timestamp time.Time      `firestore:"timestamp"`
	Prices    map[string]int `firestore:"prices"`
}

// notificationDoc is the Firestore document shape for a notification.
type notificationDoc struct {
	OwnerID   string    `firestore:"ownerId"`
	Title     string    `firestore:"title"`
	Message   string    `firestore:"message"`
	Kind      string    `firestore:"kind"`
	CropID    string    `firestore:"cropId,omitempty"`
	Read      bool      `firestore:"read"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (d notificationDoc) toDomain(id string) domain.Notification {
	return domain.Notification{
		ID:        id,
		OwnerID:   d.OwnerID,
		Title:     d.Title,
		Message:   d.Message,
		Kind:      domain.NotificationKind(d.Kind),
		CropID:    d.CropID,
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
	}
}

// transactionDoc is the Firestore document shape for one trade record.
type transactionDoc struct {
	UserID        string    `firestore:"userId"`
	CropType      string    `firestore:"cropType"`
	Quantity      int       `firestore:"quantity"`
	PricePerUnit  int       `firestore:"pricePerUnit"`
	TotalEarnings int       `firestore:"totalEarnings"`
	Kind          string    `firestore:"kind"`
	CreatedAt     time.Time `firestore:"createdAt"`
}

func (d transactionDoc) toDomain(id string) domain.Transaction {
	return domain.Transaction{
		ID:            id,
		UserID:        d.UserID,
		CropType:      d.CropType,
		Quantity:      d.Quantity,
		PricePerUnit:  d.PricePerUnit,
		TotalEarnings: d.TotalEarnings,
		Kind:          domain.TransactionKind(d.Kind),
		CreatedAt:     d.CreatedAt,
	}
}
