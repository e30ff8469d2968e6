package height

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

const (
	maxLayers = 32
	// seedOffsetScale bounds the random noise offset drawn from the seed.
	seedOffsetScale = 10000
)

// SimplexSettings configures layered (fractal) simplex noise.
type SimplexSettings struct {
	Layers      int     `json:"layers"`
	Lacunarity  float32 `json:"lacunarity"`  // frequency multiplier between layers.
	Persistence float32 `json:"persistence"` // amplitude multiplier between layers.
	Scale       float32 `json:"scale"`       // frequency of the first layer.
	Elevation   float32 `json:"elevation"`
	// VerticalShift is added after scaling by Elevation.
	VerticalShift float32 `json:"verticalShift"`
	Offset        ms3.Vec `json:"offset"`
}

// DefaultSimplexSettings returns 4 octaves of unit scale and elevation.
func DefaultSimplexSettings() SimplexSettings {
	return SimplexSettings{
		Layers:      4,
		Lacunarity:  2,
		Persistence: 0.5,
		Scale:       1,
		Elevation:   1,
	}
}

// RidgeSettings configures layered ridge noise, used for mountain ranges.
type RidgeSettings struct {
	Layers      int     `json:"layers"`
	Lacunarity  float32 `json:"lacunarity"`
	Persistence float32 `json:"persistence"`
	Scale       float32 `json:"scale"`
	// Power sharpens ridges. 1 yields plain 1-|noise| ridges.
	Power     float32 `json:"power"`
	Elevation float32 `json:"elevation"`
	// Gain weights each layer by the previous one, concentrating detail on
	// ridge crests.
	Gain          float32 `json:"gain"`
	VerticalShift float32 `json:"verticalShift"`
	// PeakSmoothing averages each sample with 4 neighbors this far away
	// (in hundredths of the unit sphere radius) to round off peaks.
	PeakSmoothing float32 `json:"peakSmoothing"`
	Offset        ms3.Vec `json:"offset"`
}

func DefaultRidgeSettings() RidgeSettings {
	return RidgeSettings{
		Layers:      5,
		Lacunarity:  2,
		Persistence: 0.5,
		Scale:       1,
		Power:       2,
		Elevation:   1,
		Gain:        1,
	}
}

// PlanetConfig configures planet terrain: continents with ocean basins and
// mountain ranges restricted to a noise mask.
type PlanetConfig struct {
	// Seed determines the noise permutation and the random noise offsets.
	Seed int64 `json:"seed"`
	// OceanDepthMultiplier deepens terrain below sea level.
	OceanDepthMultiplier float32 `json:"oceanDepthMultiplier"`
	// OceanFloorDepth is the depth at which the ocean floor flattens out.
	OceanFloorDepth     float32 `json:"oceanFloorDepth"`
	OceanFloorSmoothing float32 `json:"oceanFloorSmoothing"`
	// MountainBlend is the width of the transition from plains to mountains
	// in mask noise units.
	MountainBlend float32 `json:"mountainBlend"`
	// WaterLevel is the ocean surface radius as a fraction of planet radius.
	WaterLevel float32 `json:"waterLevel"`

	Continents *SimplexSettings `json:"continents"`
	Mask       *SimplexSettings `json:"mask"`
	Mountains  *RidgeSettings   `json:"mountains"`
}

// DefaultPlanetConfig returns a complete terrain configuration.
func DefaultPlanetConfig() PlanetConfig {
	continents := DefaultSimplexSettings()
	mask := DefaultSimplexSettings()
	mountains := DefaultRidgeSettings()
	return PlanetConfig{
		OceanDepthMultiplier: 1,
		OceanFloorDepth:      0.5,
		OceanFloorSmoothing:  0.1,
		MountainBlend:        0.5,
		WaterLevel:           0.98,
		Continents:           &continents,
		Mask:                 &mask,
		Mountains:            &mountains,
	}
}

// Validate returns an error if the configuration cannot produce terrain.
func (cfg *PlanetConfig) Validate() error {
	if cfg.Continents == nil || cfg.Mask == nil || cfg.Mountains == nil {
		return errors.New("height: continents, mask and mountains noise settings are required")
	}
	if err := cfg.Continents.validate(); err != nil {
		return fmt.Errorf("continents: %w", err)
	}
	if err := cfg.Mask.validate(); err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	if err := cfg.Mountains.validate(); err != nil {
		return fmt.Errorf("mountains: %w", err)
	}
	if !finite(cfg.OceanDepthMultiplier, cfg.OceanFloorDepth, cfg.OceanFloorSmoothing, cfg.MountainBlend) {
		return errors.New("height: non-finite planet parameter")
	}
	if !(cfg.WaterLevel > 0) || math32.IsInf(cfg.WaterLevel, 1) {
		return errors.New("height: water level must be positive")
	}
	return nil
}

// Clone returns a copy of cfg that shares no noise settings with it.
func (cfg PlanetConfig) Clone() PlanetConfig {
	if cfg.Continents != nil {
		continents := *cfg.Continents
		cfg.Continents = &continents
	}
	if cfg.Mask != nil {
		mask := *cfg.Mask
		cfg.Mask = &mask
	}
	if cfg.Mountains != nil {
		mountains := *cfg.Mountains
		cfg.Mountains = &mountains
	}
	return cfg
}

// NoiseOffsets returns the offsets applied to the continents, mask and
// mountains noise positions. Each is a random vector drawn from Seed plus
// the user supplied Offset. cfg must be valid.
func (cfg *PlanetConfig) NoiseOffsets() [3]ms3.Vec {
	rng := rand.New(rand.NewSource(cfg.Seed))
	user := [3]ms3.Vec{cfg.Continents.Offset, cfg.Mask.Offset, cfg.Mountains.Offset}
	var offsets [3]ms3.Vec
	for i := range offsets {
		r := ms3.Vec{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()}
		offsets[i] = ms3.Add(ms3.Scale(rng.Float32()*seedOffsetScale, r), user[i])
	}
	return offsets
}

func (s *SimplexSettings) validate() error {
	if s.Layers < 0 || s.Layers > maxLayers {
		return fmt.Errorf("layers %d not in [0, %d]", s.Layers, maxLayers)
	}
	if !finite(s.Lacunarity, s.Persistence, s.Scale, s.Elevation, s.VerticalShift, s.Offset.X, s.Offset.Y, s.Offset.Z) {
		return errors.New("non-finite simplex parameter")
	}
	return nil
}

func (r *RidgeSettings) validate() error {
	if r.Layers < 0 || r.Layers > maxLayers {
		return fmt.Errorf("layers %d not in [0, %d]", r.Layers, maxLayers)
	}
	if !finite(r.Lacunarity, r.Persistence, r.Scale, r.Power, r.Elevation, r.Gain, r.VerticalShift, r.PeakSmoothing, r.Offset.X, r.Offset.Y, r.Offset.Z) {
		return errors.New("non-finite ridge parameter")
	}
	return nil
}

func finite(fs ...float32) bool {
	for _, f := range fs {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
