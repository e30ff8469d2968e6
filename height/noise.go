package height

import (
	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"
	"github.com/soypat/glgl/math/ms3"
)

// Noise evaluators work over position slices, writing one value per position
// to dst. pos and dst must be of the same length.

func (s *SimplexSettings) evaluate(noise opensimplex.Noise32, offset ms3.Vec, pos []ms3.Vec, dst []float32) {
	for i, p := range pos {
		var sum float32
		amplitude := float32(1)
		frequency := s.Scale
		for layer := 0; layer < s.Layers; layer++ {
			q := ms3.Add(ms3.Scale(frequency, p), offset)
			sum += noise.Eval3(q.X, q.Y, q.Z) * amplitude
			amplitude *= s.Persistence
			frequency *= s.Lacunarity
		}
		dst[i] = sum*s.Elevation + s.VerticalShift
	}
}

func (r *RidgeSettings) evaluate(noise opensimplex.Noise32, offset ms3.Vec, pos []ms3.Vec, dst []float32) {
	for i, p := range pos {
		var sum float32
		amplitude := float32(1)
		frequency := r.Scale
		weight := float32(1)
		for layer := 0; layer < r.Layers; layer++ {
			q := ms3.Add(ms3.Scale(frequency, p), offset)
			v := 1 - math32.Abs(noise.Eval3(q.X, q.Y, q.Z))
			v = math32.Pow(math32.Abs(v), r.Power)
			v *= weight
			weight = saturate(v * r.Gain)
			sum += v * amplitude
			amplitude *= r.Persistence
			frequency *= r.Lacunarity
		}
		dst[i] = sum*r.Elevation + r.VerticalShift
	}
}

// evaluateSmoothed averages ridge noise at each position with 4 samples
// displaced tangentially by PeakSmoothing.
func (r *RidgeSettings) evaluateSmoothed(noise opensimplex.Noise32, offset ms3.Vec, pos []ms3.Vec, dst []float32, vp *VecPool) error {
	r.evaluate(noise, offset, pos, dst)
	if r.PeakSmoothing == 0 {
		return nil // All samples would coincide.
	}
	shifted := vp.V3.Acquire(len(pos))
	samples := vp.Float.Acquire(len(pos))
	dist := r.PeakSmoothing * 0.01
	for k := 0; k < 4; k++ {
		sign := float32(1 - 2*(k%2)) // +,-,+,-
		useB := k >= 2
		for i, p := range pos {
			normal := ms3.Unit(p)
			axis := ms3.Cross(normal, ms3.Vec{Y: 1})
			if useB {
				axis = ms3.Cross(normal, axis)
			}
			shifted[i] = ms3.Add(p, ms3.Scale(sign*dist, axis))
		}
		r.evaluate(noise, offset, shifted, samples)
		for i := range dst {
			dst[i] += samples[i]
		}
	}
	for i := range dst {
		dst[i] /= 5
	}
	err := vp.V3.Release(shifted)
	err2 := vp.Float.Release(samples)
	if err != nil {
		return err
	}
	return err2
}

// smoothMax is a max(a,b) with a rounded transition of width k.
func smoothMax(a, b, k float32) float32 {
	k = -math32.Abs(k)
	if k == 0 {
		return math32.Max(a, b)
	}
	h := saturate((b - a + k) / (2 * k))
	return a*h + b*(1-h) - k*h*(1-h)
}

// blend is 0 below start-width/2, 1 above start+width/2 and smooth between.
func blend(start, width, x float32) float32 {
	lo, hi := start-width/2, start+width/2
	if hi <= lo {
		if x < start {
			return 0
		}
		return 1
	}
	t := saturate((x - lo) / (hi - lo))
	return t * t * (3 - 2*t)
}

func saturate(x float32) float32 {
	return math32.Min(1, math32.Max(0, x))
}
