package height

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// fibonacciSphere returns n roughly evenly spaced unit vectors.
func fibonacciSphere(n int) []ms3.Vec {
	pts := make([]ms3.Vec, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		pts[i] = ms3.Vec{X: float32(r * math.Cos(theta)), Y: float32(y), Z: float32(r * math.Sin(theta))}
	}
	return pts
}

func TestUniform(t *testing.T) {
	pts := fibonacciSphere(10)
	h, err := Uniform(1.5).Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != len(pts) {
		t.Fatalf("want %d heights, got %d", len(pts), len(h))
	}
	for _, v := range h {
		if v != 1.5 {
			t.Fatalf("want 1.5, got %g", v)
		}
	}
}

func TestProviderFunc(t *testing.T) {
	pts := fibonacciSphere(20)
	f := ProviderFunc(func(v ms3.Vec) float32 { return 1 + v.Y/10 })
	h, err := f.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range pts {
		if h[i] != 1+v.Y/10 {
			t.Fatalf("vertex %d: want %g, got %g", i, 1+v.Y/10, h[i])
		}
	}
	var nilf ProviderFunc
	if _, err := nilf.Evaluate(pts); err == nil {
		t.Fatal("nil ProviderFunc should fail")
	}
}

func TestPlanetDeterministic(t *testing.T) {
	pts := fibonacciSphere(500)
	cfg := DefaultPlanetConfig()
	cfg.Seed = 42
	cfg.Mountains.PeakSmoothing = 1
	p1, err := NewPlanet(cfg)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewPlanet(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h1, err := p1.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	h1again, err := p1.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := p2.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(h1, h2) || !reflect.DeepEqual(h1, h1again) {
		t.Fatal("planet heights not deterministic")
	}

	cfg.Seed = 43
	p3, err := NewPlanet(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h3, err := p3.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(h1, h3) {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestPlanetHeightRange(t *testing.T) {
	pts := fibonacciSphere(2000)
	p, err := NewPlanet(DefaultPlanetConfig())
	if err != nil {
		t.Fatal(err)
	}
	h, err := p.Evaluate(pts)
	if err != nil {
		t.Fatal(err)
	}
	hmin, hmax := float32(math.Inf(1)), float32(math.Inf(-1))
	for i, v := range h {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("height %d not finite", i)
		}
		hmin = math32.Min(hmin, v)
		hmax = math32.Max(hmax, v)
	}
	if hmin < 0.8 || hmax > 1.2 {
		t.Errorf("heights outside expected range: [%g, %g]", hmin, hmax)
	}
	if hmax-hmin < 1e-3 {
		t.Errorf("terrain is flat: [%g, %g]", hmin, hmax)
	}
}

func TestPlanetErrors(t *testing.T) {
	cfg := DefaultPlanetConfig()
	cfg.Mask = nil
	if _, err := NewPlanet(cfg); err == nil {
		t.Error("missing mask settings accepted")
	}
	cfg = DefaultPlanetConfig()
	cfg.Mountains.Layers = -1
	if _, err := NewPlanet(cfg); err == nil {
		t.Error("negative layers accepted")
	}
	cfg = DefaultPlanetConfig()
	cfg.Continents.Scale = float32(math.NaN())
	if _, err := NewPlanet(cfg); err == nil {
		t.Error("NaN scale accepted")
	}
	cfg = DefaultPlanetConfig()
	cfg.WaterLevel = 0
	if _, err := NewPlanet(cfg); err == nil {
		t.Error("zero water level accepted")
	}

	p, err := NewPlanet(DefaultPlanetConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Evaluate(nil); err == nil {
		t.Error("empty evaluation succeeded")
	}
}

func TestPlanetConfigCopied(t *testing.T) {
	cfg := DefaultPlanetConfig()
	p, err := NewPlanet(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Continents.Layers = 0
	if p.Config().Continents.Layers != DefaultSimplexSettings().Layers {
		t.Fatal("planet shares settings with caller")
	}
}

func TestNoiseOffsets(t *testing.T) {
	cfg := DefaultPlanetConfig()
	cfg.Seed = 7
	a := cfg.NoiseOffsets()
	cfg.Mask.Offset = ms3.Vec{X: 1}
	b := cfg.NoiseOffsets()
	if a[0] != b[0] || a[2] != b[2] {
		t.Fatal("offsets not reproducible")
	}
	if d := ms3.Sub(b[1], a[1]); math32.Abs(d.X-1) > 1e-2 || math32.Abs(d.Y) > 1e-2 || math32.Abs(d.Z) > 1e-2 {
		t.Fatalf("user offset not applied: %v", d)
	}
	for _, off := range a {
		if n := ms3.Norm(off); n > seedOffsetScale*2 {
			t.Errorf("offset %v too large", off)
		}
	}
}

func TestShaping(t *testing.T) {
	if got := smoothMax(1, -1, 0); got != 1 {
		t.Errorf("smoothMax without smoothing: want 1, got %g", got)
	}
	// Far apart values are unaffected by smoothing.
	if got := smoothMax(-5, 3, 0.1); got != 3 {
		t.Errorf("want 3, got %g", got)
	}
	if got := smoothMax(0, 0, 0.5); got < 0 {
		t.Errorf("smoothMax of equal values below them: %g", got)
	}
	if smoothMax(0.2, 0.1, -0.1) != smoothMax(0.2, 0.1, 0.1) {
		t.Error("smoothing sign should not matter")
	}
	if blend(0, 0.5, -1) != 0 || blend(0, 0.5, 1) != 1 || blend(0, 0.5, 0) != 0.5 {
		t.Error("blend edges wrong")
	}
	if blend(0, 0, -0.1) != 0 || blend(0, 0, 0.1) != 1 {
		t.Error("zero width blend should step")
	}
}

func TestVecPool(t *testing.T) {
	var vp VecPool
	a := vp.Float.Acquire(10)
	if len(a) != 10 {
		t.Fatalf("want length 10, got %d", len(a))
	}
	if vp.AssertAllReleased() == nil {
		t.Fatal("leak not detected")
	}
	if err := vp.Float.Release(a); err != nil {
		t.Fatal(err)
	}
	if err := vp.Float.Release(a); err == nil {
		t.Fatal("double release not detected")
	}
	b := vp.Float.Acquire(5)
	if &b[0] != &a[0] {
		t.Error("released buffer not reused")
	}
	if err := vp.Float.Release(make([]float32, 3)); err == nil {
		t.Error("release of foreign buffer not detected")
	}
	vp.Float.Release(b)
	if err := vp.AssertAllReleased(); err != nil {
		t.Fatal(err)
	}
}

func TestWaterRadius(t *testing.T) {
	if got := WaterRadius(10, 0.98); math32.Abs(got-9.8) > 1e-5 {
		t.Fatalf("want 9.8, got %g", got)
	}
}

func TestEquirectangular(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetGray(x, 0, color.Gray{Y: 255}) // Northern hemisphere white.
	}
	hp := Equirectangular{Img: img, Relief: 0.5}
	h, err := hp.Evaluate([]ms3.Vec{{Y: 1}, {Y: -1}, {X: 1, Y: 0.1}, {Z: 1, Y: -0.1}})
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{1.5, 1, 1.5, 1}
	for i := range want {
		if math32.Abs(h[i]-want[i]) > 1e-6 {
			t.Errorf("vertex %d: want %g, got %g", i, want[i], h[i])
		}
	}
	if _, err := (Equirectangular{}).Evaluate([]ms3.Vec{{Y: 1}}); err == nil {
		t.Error("nil image accepted")
	}
}
