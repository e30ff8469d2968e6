package geosphere

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// evaluateHeights queries hp for the heights of the unit vertices. The returned
// error wraps ErrHeightProviderFailure or ErrHeightProviderMismatch, in which
// case no height may be used.
func evaluateHeights(hp HeightProvider, unit []ms3.Vec) ([]float32, error) {
	heights, err := hp.Evaluate(unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeightProviderFailure, err)
	}
	if len(heights) != len(unit) {
		return nil, fmt.Errorf("%w: got %d heights for %d vertices", ErrHeightProviderMismatch, len(heights), len(unit))
	}
	for i, h := range heights {
		if math32.IsNaN(h) || math32.IsInf(h, 0) {
			return nil, fmt.Errorf("%w: non-finite height %g at vertex %d", ErrHeightProviderFailure, h, i)
		}
	}
	return heights, nil
}

// displace moves every unit vertex radially to radius*heights[i]. A nil
// heights slice places all vertices on the sphere of the given radius.
// heights must be nil or of the same length as unit.
func displace(unit []ms3.Vec, radius float32, heights []float32) []ms3.Vec {
	if heights != nil && len(heights) != len(unit) {
		panic("bug: displace called with mismatched heights")
	}
	out := make([]ms3.Vec, len(unit))
	for i, v := range unit {
		h := float32(1)
		if heights != nil {
			h = heights[i]
		}
		out[i] = ms3.Scale(h*radius, ms3.Unit(v))
	}
	return out
}
