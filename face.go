package geosphere

import "github.com/soypat/geosphere/internal/d3"

// triangulateFace fills the spherical triangle bounded by sideA, sideB and
// bottom with vertices and emits its triangles.
//
// The face vertex map is laid out in rows starting at the shared apex of the
// two sides. Row r holds r+1 vertices and starts at map offset r(r+1)/2:
//
//	          0           row 0
//	        1   2         row 1
//	      3   4   5       row 2 (bottom when n=1)
//
// Row r spans 1+2r triangles which alternate between pointing away from and
// toward the apex.
func (b *builder) triangulateFace(sideA, sideB, bottom []int, reverse bool) {
	m := len(sideA)
	if m < 2 {
		return
	}
	vmap := b.vmap[:0]
	vmap = append(vmap, sideA[0])
	for i := 1; i < m-1; i++ {
		vmap = append(vmap, sideA[i])
		left, right := b.vertices[sideA[i]], b.vertices[sideB[i]]
		inner := i - 1
		for j := 0; j < inner; j++ {
			t := float32(j+1) / float32(inner+1)
			vmap = append(vmap, b.addVertex(d3.Slerp(left, right, t)))
		}
		vmap = append(vmap, sideB[i])
	}
	vmap = append(vmap, bottom...)
	b.vmap = vmap

	for row := 0; row < m-1; row++ {
		top := row * (row + 1) / 2
		bot := (row + 1) * (row + 2) / 2
		for col := 0; col < 1+2*row; col++ {
			var v0, v1, v2 int
			if col%2 == 0 {
				v0, v1, v2 = top, bot+1, bot
				top++
				bot++
			} else {
				v0, v1, v2 = top, bot, top-1
			}
			if reverse {
				v1, v2 = v2, v1
			}
			b.indices = append(b.indices, uint32(vmap[v0]), uint32(vmap[v1]), uint32(vmap[v2]))
		}
	}
}
