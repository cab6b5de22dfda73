package domain

import "time"

// MarketPrice is the current sale price for one crop type.
// Mutated only by the market simulator tick.
type MarketPrice struct {
	CropType  string    `json:"crop_type"`
	Price     int       `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarketSnapshot is one append-only history entry, recording every crop
// type's price as of a single simulator tick.
type MarketSnapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	Prices    map[string]int `json:"prices"`
}

// Trend classifies recent price movement for a crop type.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)
