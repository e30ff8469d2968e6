package d3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func TestSlerpEndpoints(t *testing.T) {
	const tol = 1e-6
	pairs := [][2]ms3.Vec{
		{{Y: 1}, {X: -1}},
		{{X: 1}, {Z: -1}},
		{{X: 3, Y: 4}, {Z: 2}}, // Non-unit inputs.
	}
	for _, p := range pairs {
		from, to := ms3.Unit(p[0]), ms3.Unit(p[1])
		got0 := Slerp(p[0], p[1], 0)
		got1 := Slerp(p[0], p[1], 1)
		if !equalWithin(got0, from, tol) {
			t.Errorf("t=0: want %v, got %v", from, got0)
		}
		if !equalWithin(got1, to, tol) {
			t.Errorf("t=1: want %v, got %v", to, got1)
		}
	}
}

func TestSlerpGreatCircle(t *testing.T) {
	const tol = 1e-5
	from, to := ms3.Vec{Y: 1}, ms3.Vec{X: 1}
	const n = 7
	for i := 1; i <= n; i++ {
		tt := float32(i) / (n + 1)
		got := Slerp(from, to, tt)
		if d := math32.Abs(ms3.Norm(got) - 1); d > tol {
			t.Errorf("t=%g: result not unit length, off by %g", tt, d)
		}
		// Equal angle steps along the arc.
		wantAngle := tt * math32.Pi / 2
		gotAngle := math32.Acos(clamp(ms3.Dot(got, from), -1, 1))
		if math32.Abs(gotAngle-wantAngle) > 1e-4 {
			t.Errorf("t=%g: want angle %g, got %g", tt, wantAngle, gotAngle)
		}
		if got.Z != 0 {
			t.Errorf("t=%g: left the XY great circle: %v", tt, got)
		}
	}
}

func TestSlerpCoincident(t *testing.T) {
	v := ms3.Vec{X: 1, Y: 1, Z: 1}
	got := Slerp(v, v, 0.5)
	want := ms3.Unit(v)
	if !IsFinite(got) || !equalWithin(got, want, 1e-6) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestSlerpAntipodal(t *testing.T) {
	const tol = 1e-5
	for _, from := range []ms3.Vec{{X: 1}, {Y: -2}, {X: 1, Y: 1, Z: 1}} {
		to := ms3.Scale(-1, from)
		mid := Slerp(from, to, 0.5)
		if !IsFinite(mid) {
			t.Fatalf("from %v: non-finite midpoint %v", from, mid)
		}
		if d := math32.Abs(ms3.Norm(mid) - 1); d > tol {
			t.Errorf("from %v: midpoint not unit length, off by %g", from, d)
		}
		if d := ms3.Dot(mid, ms3.Unit(from)); math32.Abs(d) > tol {
			t.Errorf("from %v: midpoint not a quarter turn away, dot=%g", from, d)
		}
		if got := Slerp(from, to, 1); !equalWithin(got, ms3.Unit(to), tol) {
			t.Errorf("from %v: t=1 want %v, got %v", from, ms3.Unit(to), got)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	if _, ok := Normalize(ms3.Vec{}); ok {
		t.Fatal("zero vector normalized")
	}
	u, ok := Normalize(ms3.Vec{Z: -3})
	if !ok || u != (ms3.Vec{Z: -1}) {
		t.Fatalf("got %v, %v", u, ok)
	}
}

func TestSetBounds(t *testing.T) {
	s := Set{{X: 1, Y: -2}, {Z: 5}, {X: -1, Y: 3, Z: -4}}
	bb := s.Bounds()
	if bb.Min != (ms3.Vec{X: -1, Y: -2, Z: -4}) || bb.Max != (ms3.Vec{X: 1, Y: 3, Z: 5}) {
		t.Fatalf("unexpected bounds %+v", bb)
	}
	if (Set{}).Bounds() != (ms3.Box{}) {
		t.Fatal("empty set should have zero bounds")
	}
}

func equalWithin(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}
