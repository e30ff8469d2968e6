package geosphere

import (
	"github.com/soypat/geosphere/internal/d3"
	"github.com/soypat/glgl/math/ms3"
)

// builder accumulates the unit sphere topology of a single Generate call.
// Nothing in it outlives the call.
type builder struct {
	n int // interior points per base edge.
	// vertices on the unit sphere. Indices into it are the mesh vertex indices.
	vertices []ms3.Vec
	// indices are flattened triangle triples.
	indices []uint32
	// edges holds the vertex indices of each base edge, endpoints included.
	edges [len(baseEdges)][]int
	// vmap is the scratch vertex map of the face being triangulated.
	vmap []int
}

func newBuilder(n int) *builder {
	return &builder{
		n:        n,
		vertices: make([]ms3.Vec, 0, VertexCount(n)),
		indices:  make([]uint32, 0, 3*TriangleCount(n)),
		vmap:     make([]int, 0, faceVertexCount(n)),
	}
}

// build generates the full unit geosphere.
func (b *builder) build() {
	b.vertices = append(b.vertices, baseVertices[:]...)
	for i, e := range baseEdges {
		b.edges[i] = b.subdivideEdge(e[0], e[1])
	}
	for _, f := range baseFaces {
		b.triangulateFace(b.edges[f.sideA], b.edges[f.sideB], b.edges[f.bottom], f.reverse)
	}
	if len(b.vertices) != VertexCount(b.n) || len(b.indices) != 3*TriangleCount(b.n) {
		panic("bug: geosphere vertex or index count mismatch")
	}
}

func (b *builder) addVertex(v ms3.Vec) int {
	b.vertices = append(b.vertices, v)
	return len(b.vertices) - 1
}

// subdivideEdge inserts n points on the great circle arc between vertices
// from and to and returns the edge's vertex indices in order, from first.
func (b *builder) subdivideEdge(from, to int) []int {
	start, end := b.vertices[from], b.vertices[to]
	edge := make([]int, b.n+2)
	edge[0] = from
	for i := 1; i <= b.n; i++ {
		t := float32(i) / float32(b.n+1)
		edge[i] = b.addVertex(d3.Slerp(start, end, t))
	}
	edge[b.n+1] = to
	return edge
}
