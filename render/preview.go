package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/geosphere"
	"github.com/soypat/glgl/math/ms3"
)

// View configures the camera of a preview image. The mesh is scaled to fit
// a bi-unit cube centered at the origin before rendering.
type View struct {
	// what position (point) to look at
	LookAt ms3.Vec
	// which way is up (direction)
	Up ms3.Vec
	// where the camera/eye located at (point)
	Eye ms3.Vec
	// Near and Far are the clipping plane distances.
	Near, Far float64
	// Width and Height of the output image in pixels.
	Width, Height int
	// Supersampling factor. Values below 1 are treated as 1.
	Scale int
	// Color of the mesh as a hex string, i.e. "#468966".
	Color string
}

// DefaultView returns an isometric view with a 640x480 output.
func DefaultView() View {
	return View{
		Up:     ms3.Vec{Y: 1},
		Eye:    ms3.Vec{X: 2.4, Y: 2.4, Z: 2.4}, // iso view.
		Near:   1,
		Far:    10,
		Width:  640,
		Height: 480,
		Scale:  2,
		Color:  "#468966",
	}
}

// SavePreviewPNG renders a shaded image of the mesh and saves it as PNG.
func SavePreviewPNG(path string, m geosphere.Mesh, view View) error {
	img, err := Preview(m, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

// Preview renders a shaded image of the mesh using vertex normals for
// smooth shading.
func Preview(m geosphere.Mesh, view View) (image.Image, error) {
	if m.NumTriangles() == 0 {
		return nil, errors.New("empty mesh")
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("invalid preview dimensions")
	}
	scale := view.Scale
	if scale < 1 {
		scale = 1
	}
	const fovy = 30 // vertical field of view in degrees

	var (
		eye    = fauxVec(view.Eye)                    // camera position
		center = fauxVec(view.LookAt)                 // view center position
		up     = fauxVec(view.Up)                     // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor(view.Color)          // object color
	)
	mesh := fauxMesh(m)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

func fauxMesh(m geosphere.Mesh) *fauxgl.Mesh {
	hasNormals := len(m.Normals) == len(m.Vertices)
	triangles := make([]*fauxgl.Triangle, 0, m.NumTriangles())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var vs [3]fauxgl.Vertex
		// Counter-clockwise order.
		for j, idx := range [3]uint32{m.Indices[i], m.Indices[i+2], m.Indices[i+1]} {
			vs[j].Position = fauxVec(m.Vertices[idx])
			if hasNormals {
				vs[j].Normal = fauxVec(m.Normals[idx])
			}
		}
		t := fauxgl.NewTriangle(vs[0], vs[1], vs[2])
		if !hasNormals {
			t.FixNormals()
		}
		triangles = append(triangles, t)
	}
	return fauxgl.NewTriangleMesh(triangles)
}

func fauxVec(v ms3.Vec) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}
