// Package config loads geosphere generation settings from JSON files.
// Fields missing from a file keep their default values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soypat/geosphere"
	"github.com/soypat/geosphere/height"
)

// Settings configures a planet generation run.
type Settings struct {
	Mesh MeshSettings `json:"mesh"`
	// Terrain displaces the sphere. null generates a perfect sphere.
	Terrain *height.PlanetConfig `json:"terrain"`
	Output  OutputSettings       `json:"output"`
}

type MeshSettings struct {
	Resolution int     `json:"resolution"`
	Radius     float32 `json:"radius"`
}

// OutputSettings lists output file paths. Empty paths are not written.
type OutputSettings struct {
	STL string `json:"stl"`
	OBJ string `json:"obj"`
	PNG string `json:"png"`
	// Histogram of vertex radii, format given by extension.
	Histogram     string `json:"histogram"`
	HistogramBins int    `json:"histogramBins"`
	// WaterSTL is the ocean surface sphere, requires Terrain.
	WaterSTL string `json:"waterSTL"`
}

// Default returns settings generating a resolution 64 planet of radius 1
// written to planet.stl.
func Default() Settings {
	terrain := height.DefaultPlanetConfig()
	return Settings{
		Mesh: MeshSettings{
			Resolution: 64,
			Radius:     1,
		},
		Terrain: &terrain,
		Output: OutputSettings{
			STL:           "planet.stl",
			HistogramBins: 64,
		},
	}
}

// Load reads settings from the JSON file at path. If the file does not exist
// the defaults are returned with found set to false.
func Load(path string) (s Settings, found bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return Settings{}, false, err
	}
	defer file.Close()
	s, err = Decode(file)
	if err != nil {
		return Settings{}, true, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, true, nil
}

// Decode reads JSON settings from r over the defaults and validates them.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Encode writes s as indented JSON.
func (s Settings) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	return encoder.Encode(s)
}

// Validate checks settings before any generation work starts.
func (s *Settings) Validate() error {
	if s.Mesh.Resolution < 0 || s.Mesh.Resolution > geosphere.MaxResolution {
		return fmt.Errorf("resolution %d not in [0, %d]", s.Mesh.Resolution, geosphere.MaxResolution)
	}
	if !(s.Mesh.Radius > 0) {
		return fmt.Errorf("radius %g must be positive", s.Mesh.Radius)
	}
	if s.Terrain != nil {
		if err := s.Terrain.Validate(); err != nil {
			return fmt.Errorf("terrain: %w", err)
		}
	}
	if s.Output.Histogram != "" && s.Output.HistogramBins <= 0 {
		return errors.New("histogram output requires a positive bin count")
	}
	if s.Output.WaterSTL != "" && s.Terrain == nil {
		return errors.New("water sphere output requires terrain")
	}
	return nil
}

// VertexCount returns the number of vertices the configured mesh will have.
func (s *Settings) VertexCount() int { return geosphere.VertexCount(s.Mesh.Resolution) }
