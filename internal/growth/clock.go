// Package growth is the pure growth clock: it maps a crop's planted time,
// configured harvest time and the current time to a growth fraction, a
// discrete stage and a harvestable flag. It has no state and no I/O, so it
// is safe to call at arbitrary frequency - the UI mirror re-runs it every
// second, the hourly reconciliation pass runs the same code and stays
// authoritative.
package growth

import (
	"math"
	"time"

	"github.com/farmverse/farmverse/internal/domain"
)

// State is the computed growth status of a crop at a point in time.
type State struct {
	Fraction    float64
	Stage       domain.GrowthStage
	Harvestable bool
}

// Fraction returns the elapsed proportion of the crop's growth window,
// clamped to [0,1]. A non-positive window (malformed catalog entry) or a
// non-finite result (clock skew) yields 0 rather than propagating NaN/Inf.
func Fraction(plantedAt, harvestTime, now time.Time) float64 {
	window := harvestTime.Sub(plantedAt)
	if window <= 0 {
		return 0
	}

	f := float64(now.Sub(plantedAt)) / float64(window)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StageFor maps a growth fraction to its discrete stage.
//
// While f < 1 the index is min(floor(f*N), N-2): the clamp keeps the
// terminal stage unreachable until the fraction actually hits 1, even though
// floor(f*N) can arithmetically equal N-1 slightly earlier. Only f >= 1
// yields the terminal stage.
func StageFor(f float64) domain.GrowthStage {
	stages := domain.GrowthStages
	if f >= 1 {
		return stages[len(stages)-1]
	}

	index := int(math.Floor(f * float64(len(stages))))
	if index > len(stages)-2 {
		index = len(stages) - 2
	}
	if index < 0 {
		index = 0
	}
	return stages[index]
}

// At computes the full growth state of a crop at the given time.
func At(plantedAt, harvestTime, now time.Time) State {
	f := Fraction(plantedAt, harvestTime, now)
	return State{
		Fraction:    f,
		Stage:       StageFor(f),
		Harvestable: f >= 1,
	}
}
