package meshcheck

import (
	"sort"

	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

var (
	_ kdtree.Interface  = kdVertices{}
	_ kdtree.Comparable = kdVertex{}
)

// DuplicateVertices returns the index pairs {i, j}, i < j, of vertices closer
// than tol to each other, sorted by i then j.
func DuplicateVertices(vertices []ms3.Vec, tol float32) [][2]int {
	if len(vertices) < 2 {
		return nil
	}
	points := make(kdVertices, len(vertices))
	for i, v := range vertices {
		points[i] = kdVertex{v: v, idx: i}
	}
	// kdtree.New reorders points so queries use the input slice.
	tree := kdtree.New(append(kdVertices(nil), points...), false)
	tol2 := float64(tol) * float64(tol)
	var pairs [][2]int
	for _, q := range points {
		keeper := kdtree.NewDistKeeper(tol2)
		tree.NearestSet(keeper, q)
		for _, c := range keeper.Heap {
			if c.Comparable == nil {
				continue // Sentinel.
			}
			other := c.Comparable.(kdVertex)
			if other.idx > q.idx {
				pairs = append(pairs, [2]int{q.idx, other.idx})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

type kdVertex struct {
	v   ms3.Vec
	idx int
}

type kdVertices []kdVertex

func (k kdVertices) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: d, vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//
//	c = a_d - b_d
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdVertex), d)
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	d := ms3.Sub(a.v, b.(kdVertex).v)
	return float64(d.X)*float64(d.X) + float64(d.Y)*float64(d.Y) + float64(d.Z)*float64(d.Z)
}

// c = a.dim - b.dim
func kdComp(a, b kdVertex, dim kdtree.Dim) float64 {
	switch dim {
	case 0:
		return float64(a.v.X) - float64(b.v.X)
	case 1:
		return float64(a.v.Y) - float64(b.v.Y)
	case 2:
		return float64(a.v.Z) - float64(b.v.Z)
	}
	panic("bad kdtree dimension")
}

type kdPlane struct {
	dim      kdtree.Dim
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i], p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
