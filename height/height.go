// Package height implements height providers for geosphere meshes: uniform
// and functional fields plus a noise based planet terrain evaluated on the CPU.
// Heights are radial scale factors; 1 leaves a vertex on the sphere.
package height

import (
	"errors"

	"github.com/soypat/glgl/math/ms3"
)

var errNoVertices = errors.New("height: no vertices to evaluate")

// Uniform assigns the same height to every vertex.
type Uniform float32

// Evaluate implements geosphere.HeightProvider.
func (u Uniform) Evaluate(unit []ms3.Vec) ([]float32, error) {
	heights := make([]float32, len(unit))
	for i := range heights {
		heights[i] = float32(u)
	}
	return heights, nil
}

// ProviderFunc adapts a per-vertex function to a height provider.
type ProviderFunc func(unit ms3.Vec) float32

// Evaluate implements geosphere.HeightProvider.
func (f ProviderFunc) Evaluate(unit []ms3.Vec) ([]float32, error) {
	if f == nil {
		return nil, errors.New("height: nil ProviderFunc")
	}
	heights := make([]float32, len(unit))
	for i, v := range unit {
		heights[i] = f(v)
	}
	return heights, nil
}

// WaterRadius returns the radius of the ocean surface of a planet of the
// given radius whose water level is a fraction of it.
func WaterRadius(radius, level float32) float32 {
	return radius * level
}
