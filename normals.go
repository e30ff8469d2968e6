package geosphere

import (
	"github.com/soypat/geosphere/internal/d3"
	"github.com/soypat/glgl/math/ms3"
)

// faceNormal returns the area weighted normal of triangle v0,v1,v2 as wound by
// the generator, which is clockwise when seen from the front.
func faceNormal(v0, v1, v2 ms3.Vec) ms3.Vec {
	return ms3.Cross(ms3.Sub(v2, v0), ms3.Sub(v1, v0))
}

// vertexNormals returns the normalized sum of the normals of the triangles
// referencing each vertex. undefined is the number of vertices whose sum
// vanished; their normal is the zero vector.
func vertexNormals(vertices []ms3.Vec, indices []uint32) (normals []ms3.Vec, undefined int) {
	normals = make([]ms3.Vec, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		n := faceNormal(vertices[i0], vertices[i1], vertices[i2])
		normals[i0] = ms3.Add(normals[i0], n)
		normals[i1] = ms3.Add(normals[i1], n)
		normals[i2] = ms3.Add(normals[i2], n)
	}
	for i, n := range normals {
		unit, ok := d3.Normalize(n)
		if !ok {
			undefined++
		}
		normals[i] = unit
	}
	return normals, undefined
}
