package domain

import (
	"fmt"
	"time"
)

// CropDefinition is the static economic/timing configuration for one crop kind.
type CropDefinition struct {
	Name           string        `json:"name"`
	DisplayName    string        `json:"display_name"`
	GrowthDuration time.Duration `json:"growth_duration"`
	BaseValue      int           `json:"base_value"`
	Cost           int           `json:"cost"`
	Fluctuation    float64       `json:"fluctuation"`
}

// Catalog is the closed set of plantable crop kinds, keyed by crop type.
// It is built once at startup and passed to the engine at construction;
// services never define their own crop literals.
type Catalog map[string]CropDefinition

// Get returns the definition for a crop type.
func (c Catalog) Get(cropType string) (CropDefinition, bool) {
	def, ok := c[cropType]
	return def, ok
}

// Types returns all crop type keys. Order is not defined.
func (c Catalog) Types() []string {
	types := make([]string, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	return types
}

// Validate checks every catalog entry for malformed configuration.
// A zero or negative growth duration would make the growth fraction
// degenerate, and a fluctuation outside [0,1] could push prices negative.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}
	for cropType, def := range c {
		if def.GrowthDuration <= 0 {
			return fmt.Errorf("%w: %s has non-positive growth duration", ErrInvalidCatalog, cropType)
		}
		if def.BaseValue <= 0 {
			return fmt.Errorf("%w: %s has non-positive base value", ErrInvalidCatalog, cropType)
		}
		if def.Cost <= 0 {
			return fmt.Errorf("%w: %s has non-positive cost", ErrInvalidCatalog, cropType)
		}
		if def.Fluctuation < 0 || def.Fluctuation > 1 {
			return fmt.Errorf("%w: %s fluctuation %.2f outside [0,1]", ErrInvalidCatalog, cropType, def.Fluctuation)
		}
	}
	return nil
}

// DefaultCatalog returns the production crop set. Durations are hour-scale;
// economic values match the original game balance.
func DefaultCatalog() Catalog {
	return Catalog{
		"wheat":  {Name: "wheat", DisplayName: "Wheat", GrowthDuration: 2 * time.Hour, BaseValue: 100, Cost: 50, Fluctuation: 0.3},
		"corn":   {Name: "corn", DisplayName: "Corn", GrowthDuration: 3 * time.Hour, BaseValue: 150, Cost: 75, Fluctuation: 0.25},
		"tomato": {Name: "tomato", DisplayName: "Tomato", GrowthDuration: 4 * time.Hour, BaseValue: 200, Cost: 100, Fluctuation: 0.4},
		"carrot": {Name: "carrot", DisplayName: "Carrot", GrowthDuration: 1 * time.Hour, BaseValue: 80, Cost: 40, Fluctuation: 0.2},
	}
}

// DevCatalog returns the same crop set with minute-scale growth durations
// so local play doesn't wait hours between stages.
func DevCatalog() Catalog {
	catalog := DefaultCatalog()
	for cropType, def := range catalog {
		def.GrowthDuration = time.Duration(def.GrowthDuration/time.Hour) * time.Minute
		catalog[cropType] = def
	}
	return catalog
}
