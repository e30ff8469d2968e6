package meshcheck

import (
	"errors"
	"fmt"

	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the geometry of a closed mesh. Sums are accumulated in
// float64.
type Stats struct {
	Vertices  int
	Triangles int
	// Radius statistics of vertex distances to the origin.
	MinRadius  float64
	MaxRadius  float64
	MeanRadius float64
	StdRadius  float64
	Area       float64
	// Volume enclosed by the mesh, negative if it is wound inside out.
	Volume float64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d vertices, %d triangles, radius %.4g..%.4g (mean %.4g, std %.3g), area %.5g, volume %.5g",
		s.Vertices, s.Triangles, s.MinRadius, s.MaxRadius, s.MeanRadius, s.StdRadius, s.Area, s.Volume)
}

// Analyze computes mesh statistics.
func Analyze(vertices []ms3.Vec, indices []uint32) (Stats, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return Stats{}, errors.New("meshcheck: empty mesh")
	}
	if len(indices)%3 != 0 {
		return Stats{}, errIndices
	}
	radii := make([]float64, len(vertices))
	for i, v := range vertices {
		radii[i] = r3.Norm(r3From(v))
	}
	s := Stats{
		Vertices:  len(vertices),
		Triangles: len(indices) / 3,
		MinRadius: floats.Min(radii),
		MaxRadius: floats.Max(radii),
	}
	s.MeanRadius, s.StdRadius = stat.MeanStdDev(radii, nil)
	for i := 0; i < len(indices); i += 3 {
		if int(indices[i]) >= len(vertices) || int(indices[i+1]) >= len(vertices) || int(indices[i+2]) >= len(vertices) {
			return Stats{}, fmt.Errorf("meshcheck: triangle %d index out of range", i/3)
		}
		// Counter-clockwise order.
		a := r3From(vertices[indices[i]])
		b := r3From(vertices[indices[i+2]])
		c := r3From(vertices[indices[i+1]])
		cross := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		s.Area += r3.Norm(cross) / 2
		s.Volume += r3.Dot(a, r3.Cross(b, c)) / 6
	}
	return s, nil
}

func r3From(v ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
