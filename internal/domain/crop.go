package domain

import "time"

// GrowthStage is a discrete, ordered growth label shown to the player.
type GrowthStage string

// Growth stages in order. The terminal stage is reserved for fully grown
// crops; the growth clock never assigns it from the stage-index formula alone.
const (
	StageSeedling GrowthStage = "seedling"
	StageGrowing  GrowthStage = "growing"
	StageMature   GrowthStage = "mature"
	StageReady    GrowthStage = "ready"
)

// GrowthStages lists all stages in progression order.
var GrowthStages = []GrowthStage{StageSeedling, StageGrowing, StageMature, StageReady}

// StageIndex returns the position of a stage in the progression order,
// or -1 for an unknown stage.
func StageIndex(s GrowthStage) int {
	for i, stage := range GrowthStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// Position is a cell on a player's farm grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Crop is a planted crop instance. ID, OwnerID, CropType, Position,
// PlantedAt and HarvestTime are immutable after creation; Stage and
// IsHarvestable advance monotonically and are only written by the
// lifecycle reconciliation pass.
type Crop struct {
	ID            string      `json:"id"`
	OwnerID       string      `json:"owner_id"`
	CropType      string      `json:"crop_type"`
	Position      Position    `json:"position"`
	PlantedAt     time.Time   `json:"planted_at"`
	HarvestTime   time.Time   `json:"harvest_time"`
	Stage         GrowthStage `json:"stage"`
	IsHarvestable bool        `json:"is_harvestable"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// GrowthUpdate is one crop's pending stage write from a reconciliation pass.
type GrowthUpdate struct {
	CropID        string
	Stage         GrowthStage
	IsHarvestable bool
}

// HarvestResult is the outcome of a successful harvest.
type HarvestResult struct {
	CropID     string `json:"crop_id"`
	CropType   string `json:"crop_type"`
	Payout     int    `json:"payout"`
	Experience int    `json:"experience"`
}
