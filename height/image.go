package height

import (
	"errors"
	"image"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Equirectangular displaces the surface by the brightness of an
// equirectangular image, i.e. a topographic world map spanning longitudes
// -180..180 left to right and latitudes 90..-90 top to bottom.
// Longitude 0 lies on the +X axis and the north pole on +Y.
type Equirectangular struct {
	Img image.Image
	// Relief is the height added by a white pixel. Black pixels yield height 1.
	Relief float32
}

// Evaluate implements geosphere.HeightProvider.
func (e Equirectangular) Evaluate(unit []ms3.Vec) ([]float32, error) {
	if e.Img == nil {
		return nil, errors.New("height: nil equirectangular image")
	}
	if len(unit) == 0 {
		return nil, errNoVertices
	}
	rect := e.Img.Bounds()
	if rect.Empty() {
		return nil, errors.New("height: empty equirectangular image")
	}
	heights := make([]float32, len(unit))
	for i, v := range unit {
		x, y := e.pixel(rect, v)
		r, g, b, _ := e.Img.At(x, y).RGBA()
		brightness := float32(r+g+b) / (3 * math.MaxUint16)
		heights[i] = 1 + e.Relief*brightness
	}
	return heights, nil
}

func (e Equirectangular) pixel(rect image.Rectangle, v ms3.Vec) (x, y int) {
	lon := math32.Atan2(-v.Z, v.X)                          // -pi..pi
	lat := math32.Asin(math32.Max(-1, math32.Min(1, v.Y))) // -pi/2..pi/2
	u := (lon + math.Pi) / (2 * math.Pi)
	w := (math.Pi/2 - lat) / math.Pi
	x = rect.Min.X + int(u*float32(rect.Dx()))
	y = rect.Min.Y + int(w*float32(rect.Dy()))
	return min(x, rect.Max.X-1), min(y, rect.Max.Y-1)
}
