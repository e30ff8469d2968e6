package height

import (
	"errors"
	"sync"

	"github.com/ojrac/opensimplex-go"
	"github.com/soypat/glgl/math/ms3"
)

// Planet computes terrain heights from three noise layers: continents shape
// land and ocean basins, mountains add ridges wherever the mask noise is high.
// Planet is deterministic for a given PlanetConfig and safe for concurrent use.
type Planet struct {
	cfg     PlanetConfig
	offsets [3]ms3.Vec
	noise   opensimplex.Noise32

	mu sync.Mutex // guards vp.
	vp VecPool
}

// NewPlanet returns a Planet height provider. The noise settings in cfg are
// copied.
func NewPlanet(cfg PlanetConfig) (*Planet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()
	return &Planet{
		cfg:     cfg,
		offsets: cfg.NoiseOffsets(),
		noise:   opensimplex.New32(cfg.Seed),
	}, nil
}

// Config returns a copy of the planet's configuration.
func (p *Planet) Config() PlanetConfig {
	return p.cfg.Clone()
}

// Evaluate implements geosphere.HeightProvider.
func (p *Planet) Evaluate(unit []ms3.Vec) ([]float32, error) {
	if len(unit) == 0 {
		return nil, errNoVertices
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(unit)
	continents := p.vp.Float.Acquire(n)
	mask := p.vp.Float.Acquire(n)
	mountains := p.vp.Float.Acquire(n)

	cfg := &p.cfg
	cfg.Continents.evaluate(p.noise, p.offsets[0], unit, continents)
	cfg.Mask.evaluate(p.noise, p.offsets[1], unit, mask)
	err := cfg.Mountains.evaluateSmoothed(p.noise, p.offsets[2], unit, mountains, &p.vp)

	heights := make([]float32, n)
	for i := range heights {
		heights[i] = cfg.terrain(continents[i], mask[i], mountains[i])
	}
	err = errors.Join(err,
		p.vp.Float.Release(continents),
		p.vp.Float.Release(mask),
		p.vp.Float.Release(mountains),
		p.vp.AssertAllReleased(),
	)
	if err != nil {
		return nil, err
	}
	return heights, nil
}

// terrain combines noise samples at a point into a height.
func (cfg *PlanetConfig) terrain(continent, mask, ridge float32) float32 {
	floor := -cfg.OceanFloorDepth + continent*0.15
	continent = smoothMax(continent, floor, cfg.OceanFloorSmoothing)
	if continent < 0 {
		continent *= 1 + cfg.OceanDepthMultiplier
	}
	mountain := ridge * blend(0, cfg.MountainBlend, mask)
	return 1 + (continent+mountain)*0.01
}
