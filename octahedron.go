package geosphere

import "github.com/soypat/glgl/math/ms3"

// Octahedron seed of the geosphere. Vertex i of every generated mesh is
// baseVertices[i].
var baseVertices = [6]ms3.Vec{
	{Y: 1},  // up
	{X: -1}, // left
	{Z: 1},  // back
	{X: 1},  // right
	{Z: -1}, // forward
	{Y: -1}, // down
}

// baseEdges are pairs of baseVertices indices. An edge is always walked
// from its first vertex to its second, whichever face reads it.
var baseEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {2, 3}, {3, 4}, {4, 1},
	{5, 1}, {5, 2}, {5, 3}, {5, 4},
}

// faceEdges references three of baseEdges. sideA and sideB start at the
// same apex and bottom runs from the end of sideA to the end of sideB.
type faceEdges struct {
	sideA, sideB, bottom int
	// reverse flips triangle winding. Set for faces whose apex is the
	// lower pole so all faces end up facing outward.
	reverse bool
}

var baseFaces = [8]faceEdges{
	{sideA: 0, sideB: 1, bottom: 4},
	{sideA: 1, sideB: 2, bottom: 5},
	{sideA: 2, sideB: 3, bottom: 6},
	{sideA: 3, sideB: 0, bottom: 7},
	{sideA: 8, sideB: 9, bottom: 4, reverse: true},
	{sideA: 9, sideB: 10, bottom: 5, reverse: true},
	{sideA: 10, sideB: 11, bottom: 6, reverse: true},
	{sideA: 11, sideB: 8, bottom: 7, reverse: true},
}
