// Package geosphere generates near-uniform triangulated spheres by
// subdividing an octahedron, optionally displacing the surface with a
// height field to produce planet terrain.
//
// The 12 octahedron edges are subdivided once and shared by the faces
// bordering them, so the resulting mesh has no duplicate seam vertices
// and is watertight.
package geosphere

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/soypat/geosphere/internal/d3"
	"github.com/soypat/glgl/math/ms3"
)

// HeightProvider computes a radial scale factor for every point of a unit
// sphere. A height of 1 leaves the surface undisplaced.
type HeightProvider interface {
	// Evaluate returns one height per vertex in unitVertices, in the same
	// order. Implementations must not modify unitVertices.
	Evaluate(unitVertices []ms3.Vec) ([]float32, error)
}

// Config holds the parameters of a Generate call.
type Config struct {
	// Resolution is the number of points inserted along each octahedron
	// edge. 0 yields the octahedron itself.
	Resolution int
	// Radius of the undisplaced sphere. Must be positive.
	Radius float32
	// Heights displaces the sphere surface. nil generates a perfect sphere.
	Heights HeightProvider
	// Logger receives warnings. nil uses the standard logger.
	Logger *log.Logger
}

// Mesh is an indexed triangle mesh. Vertices and Normals share indexing.
// Triangles are wound clockwise when seen from outside the sphere; use
// Triangle for counter-clockwise (right hand rule outward) ordering.
type Mesh struct {
	Vertices []ms3.Vec
	// Indices holds 3 vertex indices per triangle.
	Indices []uint32
	Normals []ms3.Vec
	// Warnings lists recoverable conditions met during generation such as
	// ErrHeightProviderMismatch. Check them with errors.Is.
	Warnings []error
}

// GenerateSphere generates a geosphere of the given resolution and radius,
// displaced by hp if non-nil.
func GenerateSphere(resolution int, radius float32, hp HeightProvider) (Mesh, error) {
	return Generate(Config{Resolution: resolution, Radius: radius, Heights: hp})
}

// Generate generates a geosphere as configured. The only errors returned are
// ErrInvalidParameter and ErrEmptyMesh; height provider problems fall back to
// an undisplaced sphere and are reported in Mesh.Warnings.
func Generate(cfg Config) (Mesh, error) {
	n, radius := cfg.Resolution, cfg.Radius
	if n < 0 || n > MaxResolution {
		return Mesh{}, fmt.Errorf("%w: resolution %d not in [0, %d]", ErrInvalidParameter, n, MaxResolution)
	}
	if !(radius > 0) || math32.IsInf(radius, 1) {
		return Mesh{}, fmt.Errorf("%w: radius %g not positive and finite", ErrInvalidParameter, radius)
	}
	if VertexCount(n) <= 0 || TriangleCount(n) <= 0 {
		return Mesh{}, ErrEmptyMesh
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	b := newBuilder(n)
	b.build()

	var warnings []error
	var heights []float32
	if cfg.Heights != nil {
		var err error
		heights, err = evaluateHeights(cfg.Heights, b.vertices)
		if err != nil {
			logger.Printf("%v; generating undisplaced sphere", err)
			warnings = append(warnings, err)
		}
	}
	vertices := displace(b.vertices, radius, heights)
	normals, undefined := vertexNormals(vertices, b.indices)
	if undefined > 0 {
		err := fmt.Errorf("%w for %d vertices", ErrUndefinedNormal, undefined)
		logger.Print(err)
		warnings = append(warnings, err)
	}
	return Mesh{
		Vertices: vertices,
		Indices:  b.indices,
		Normals:  normals,
		Warnings: warnings,
	}, nil
}

// NumTriangles returns the number of triangles in the mesh.
func (m Mesh) NumTriangles() int { return len(m.Indices) / 3 }

// Triangle returns the i'th triangle ordered counter-clockwise when seen from
// outside, the convention of STL and most renderers.
func (m Mesh) Triangle(i int) ms3.Triangle {
	i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
	return ms3.Triangle{m.Vertices[i0], m.Vertices[i2], m.Vertices[i1]}
}

// AppendTriangles appends all mesh triangles to dst, ordered as in Triangle.
func (m Mesh) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i < m.NumTriangles(); i++ {
		dst = append(dst, m.Triangle(i))
	}
	return dst
}

// Bounds returns the bounding box of the mesh vertices.
func (m Mesh) Bounds() ms3.Box {
	return d3.Set(m.Vertices).Bounds()
}
