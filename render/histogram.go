package render

import (
	"errors"

	"github.com/soypat/geosphere"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveRadiusHistogram plots the distribution of vertex distances to the
// origin, the terrain elevation profile, and saves it to path. The image
// format is chosen by the path's extension (png, svg, pdf...).
func SaveRadiusHistogram(path string, m geosphere.Mesh, bins int) error {
	p, err := RadiusHistogram(m, bins)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// RadiusHistogram returns a plot of the distribution of vertex radii.
func RadiusHistogram(m geosphere.Mesh, bins int) (*plot.Plot, error) {
	if len(m.Vertices) == 0 {
		return nil, errors.New("empty mesh")
	}
	if bins <= 0 {
		return nil, errors.New("non-positive bin count")
	}
	radii := make(plotter.Values, len(m.Vertices))
	for i, v := range m.Vertices {
		radii[i] = float64(ms3.Norm(v))
	}
	p := plot.New()
	p.Title.Text = "Vertex radius"
	p.X.Label.Text = "radius"
	p.Y.Label.Text = "vertices"
	h, err := plotter.NewHist(radii, bins)
	if err != nil {
		return nil, err
	}
	p.Add(h)
	return p, nil
}
