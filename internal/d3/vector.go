package d3

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// float32 vector routines that ms3 does not provide.

// zeroAngle is the angle in radians under which two unit vectors
// are considered coincident by Slerp.
const zeroAngle = 1e-5

// oppositeTol is the distance of the dot product from -1 under which two
// unit vectors are considered opposite by Slerp.
const oppositeTol = 1e-6

// IsFinite returns false if any component of a is NaN or infinite.
func IsFinite(a ms3.Vec) bool {
	return !(math32.IsNaN(a.X) || math32.IsInf(a.X, 0) ||
		math32.IsNaN(a.Y) || math32.IsInf(a.Y, 0) ||
		math32.IsNaN(a.Z) || math32.IsInf(a.Z, 0))
}

// Normalize returns the unit vector in the direction of a. ok is false
// and the zero vector returned if a has no length.
func Normalize(a ms3.Vec) (unit ms3.Vec, ok bool) {
	n := ms3.Norm(a)
	if n == 0 {
		return ms3.Vec{}, false
	}
	return ms3.Scale(1/n, a), true
}

// Slerp interpolates between the directions of from and to along the great
// circle joining them. t=0 returns from's direction and t=1 to's direction.
// The result is always of unit length. Opposite directions have no unique
// great circle, Slerp then rotates through an arbitrary axis perpendicular to from.
func Slerp(from, to ms3.Vec, t float32) ms3.Vec {
	a := ms3.Unit(from)
	b := ms3.Unit(to)
	dot := clamp(ms3.Dot(a, b), -1, 1)
	theta := math32.Acos(dot)
	switch {
	case theta < zeroAngle:
		// Coincident directions, sin(theta) would vanish.
		return ms3.Unit(ms3.Add(a, ms3.Scale(t, ms3.Sub(b, a))))
	case dot < -1+oppositeTol:
		sin, cos := math32.Sincos(t * math32.Pi)
		return ms3.Unit(ms3.Add(ms3.Scale(cos, a), ms3.Scale(sin, perpendicular(a))))
	}
	sin := math32.Sin(theta)
	wa := math32.Sin((1-t)*theta) / sin
	wb := math32.Sin(t*theta) / sin
	return ms3.Unit(ms3.Add(ms3.Scale(wa, a), ms3.Scale(wb, b)))
}

// perpendicular returns a unit vector perpendicular to the unit vector a.
func perpendicular(a ms3.Vec) ms3.Vec {
	axis := ms3.Vec{X: 1}
	if math32.Abs(a.X) > 0.9 {
		axis = ms3.Vec{Y: 1}
	}
	return ms3.Unit(ms3.Cross(a, axis))
}

// Clamp x between a and b, assume a <= b
func clamp(x, a, b float32) float32 {
	return math32.Min(b, math32.Max(x, a))
}

type Set []ms3.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() ms3.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = ms3.MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() ms3.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = ms3.MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing all vectors in the set.
// An empty set returns the zero box.
func (a Set) Bounds() ms3.Box {
	if len(a) == 0 {
		return ms3.Box{}
	}
	return ms3.Box{Min: a.Min(), Max: a.Max()}
}
