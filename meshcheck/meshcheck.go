// Package meshcheck analyzes indexed triangle meshes for the properties a
// closed sphere-like surface must have: every edge shared by exactly two
// triangles with opposite direction, all faces wound outward and no
// coincident vertices.
//
// Functions take the vertex and index buffers of a mesh with each triangle
// wound clockwise seen from outside, as produced by geosphere.
package meshcheck

import (
	"errors"
	"fmt"

	"github.com/soypat/geosphere/internal/d3"
	"github.com/soypat/glgl/math/ms3"
)

var errIndices = errors.New("meshcheck: index count not a multiple of 3")

// Watertight returns an error if any edge of the mesh is not shared by
// exactly two triangles traversing it in opposite directions.
func Watertight(indices []uint32) error {
	if len(indices)%3 != 0 {
		return errIndices
	}
	type edge struct{ from, to uint32 }
	directed := make(map[edge]int, len(indices))
	for i := 0; i < len(indices); i += 3 {
		tri := indices[i : i+3]
		for j := 0; j < 3; j++ {
			e := edge{tri[j], tri[(j+1)%3]}
			if e.from == e.to {
				return fmt.Errorf("meshcheck: triangle %d is degenerate", i/3)
			}
			directed[e]++
		}
	}
	for e, count := range directed {
		if count != 1 {
			return fmt.Errorf("meshcheck: edge %d->%d traversed %d times in the same direction", e.from, e.to, count)
		}
		if directed[edge{e.to, e.from}] != 1 {
			return fmt.Errorf("meshcheck: edge %d-%d not shared by two triangles", e.from, e.to)
		}
	}
	return nil
}

// InwardFaces returns the indices of triangles whose normal does not point
// away from the origin.
func InwardFaces(vertices []ms3.Vec, indices []uint32) []int {
	var inward []int
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		n := ms3.Cross(ms3.Sub(v2, v0), ms3.Sub(v1, v0))
		centroid := ms3.Add(v0, ms3.Add(v1, v2))
		if ms3.Dot(n, centroid) <= 0 {
			inward = append(inward, i/3)
		}
	}
	return inward
}

// Check runs all checks and returns the first failure.
func Check(vertices []ms3.Vec, indices []uint32, vertexTol float32) error {
	if err := Watertight(indices); err != nil {
		return err
	}
	for i, v := range vertices {
		if !d3.IsFinite(v) {
			return fmt.Errorf("meshcheck: vertex %d is not finite", i)
		}
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("meshcheck: index %d out of range of %d vertices", idx, len(vertices))
		}
	}
	if inward := InwardFaces(vertices, indices); len(inward) > 0 {
		return fmt.Errorf("meshcheck: %d triangles face inward, first is %d", len(inward), inward[0])
	}
	if dups := DuplicateVertices(vertices, vertexTol); len(dups) > 0 {
		return fmt.Errorf("meshcheck: %d duplicate vertex pairs, first is %v", len(dups), dups[0])
	}
	return nil
}
