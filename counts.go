package geosphere

// MaxResolution is the largest resolution accepted by Generate. Above it
// index counts would overflow a 32 bit int.
const MaxResolution = 1 << 13

// VertexCount returns the number of vertices of a geosphere of resolution n.
// Every face holds ((n+3)²-(n+3))/2 vertices counting its boundary; the
// 12 shared edges and 6 shared corners are then counted once.
func VertexCount(n int) int {
	perFace := faceVertexCount(n)
	return 8*perFace - 12*(n+2) + 6
}

// TriangleCount returns the number of triangles of a geosphere of resolution n.
func TriangleCount(n int) int {
	return 8 * (n + 1) * (n + 1)
}

func faceVertexCount(n int) int {
	side := n + 3
	return (side*side - side) / 2
}
