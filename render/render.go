// Package render writes geospheres to mesh file formats and images.
package render

import (
	"io"

	"github.com/soypat/geosphere"
	"github.com/soypat/glgl/math/ms3"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once all
// triangles have been read.
type Renderer interface {
	ReadTriangles(t []ms3.Triangle) (int, error)
}

// MeshRenderer streams the triangles of a geosphere mesh with outward
// (counter-clockwise) winding.
type MeshRenderer struct {
	mesh geosphere.Mesh
	next int
}

var _ Renderer = (*MeshRenderer)(nil)

// NewMeshRenderer returns a Renderer reading the triangles of m.
func NewMeshRenderer(m geosphere.Mesh) *MeshRenderer {
	return &MeshRenderer{mesh: m}
}

func (mr *MeshRenderer) ReadTriangles(t []ms3.Triangle) (int, error) {
	total := mr.mesh.NumTriangles()
	if mr.next >= total {
		return 0, io.EOF
	}
	n := 0
	for n < len(t) && mr.next < total {
		t[n] = mr.mesh.Triangle(mr.next)
		n++
		mr.next++
	}
	return n, nil
}

// Reset restarts reading from the first triangle.
func (mr *MeshRenderer) Reset() { mr.next = 0 }

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1<<12)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
