package geosphere_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/soypat/geosphere"
	"github.com/soypat/geosphere/height"
	"github.com/soypat/geosphere/render"
)

const benchResolution = 100

func BenchmarkGenerateSphere(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := geosphere.GenerateSphere(benchResolution, 1, nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGeneratePlanet(b *testing.B) {
	planet, err := height.NewPlanet(height.DefaultPlanetConfig())
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		_, err := geosphere.GenerateSphere(benchResolution, 1, planet)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSphereSTL and BenchmarkSDFXSphereSTL compare writing a sphere
// STL with similar triangle counts.
func BenchmarkSphereSTL(b *testing.B) {
	output := filepath.Join(b.TempDir(), "geosphere.stl")
	for i := 0; i < b.N; i++ {
		m, err := geosphere.GenerateSphere(benchResolution, 1, nil)
		if err != nil {
			b.Fatal(err)
		}
		err = render.CreateSTL(output, m)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSDFXSphereSTL(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	output := filepath.Join(b.TempDir(), "sdfx_sphere.stl")
	object, err := sdf.Sphere3D(1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchResolution, output, &sdfxrender.MarchingCubesOctree{})
	}
}
