package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/geosphere"
	"github.com/soypat/glgl/math/ms3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// CreateSTL writes the mesh to a binary STL file at path.
func CreateSTL(path string, m geosphere.Mesh) error {
	return createSTL(path, NewMeshRenderer(m))
}

// WriteBinarySTL writes model triangles to a writer in binary STL format.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	nt := int64(len(model)) // int64 cast so that next line works correctly on 32bit machines.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	header := stlHeader{
		Count: uint32(nt),
	}
	var buf [stlHeaderSize]byte
	header.put(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	} else if n != len(buf) {
		return n, io.ErrShortWrite
	}
	var d stlTriangle
	for _, triangle := range model {
		d.set(triangle)
		d.put(buf[:])
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		} else if ngot != stlTriangleSize {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// ReadBinarySTL reads all triangles of a binary STL file.
func ReadBinarySTL(r io.Reader) (output []ms3.Triangle, readErr error) {
	var hbuf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	var header stlHeader
	header.get(hbuf[:])
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf [stlTriangleSize]byte
		d   stlTriangle
		i   int
	)
	defer func() {
		if readErr != nil {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i, header.Count, readErr)
		}
	}()
	output = make([]ms3.Triangle, 0, header.Count)
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			return nil, err
		}
		output = append(output, d.Triangle())
	}
	return output, nil
}

// stlReader encodes triangles read from a Renderer as STL triangle records.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]ms3.Triangle
}

const trianglesInBuffer = 1 << 10

func (sr *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(sr.buf))
	if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	var (
		err error
		it  int // Number of triangles written to byte buffer.
		nt  int
		d   stlTriangle
	)
	for it < ntMax && err == nil {
		nt, err = sr.r.ReadTriangles(sr.buf[:ntMax-it])
		for _, triangle := range sr.buf[:nt] {
			d.set(triangle)
			d.put(b[it*stlTriangleSize:])
			it++
		}
	}
	return it * stlTriangleSize, err
}

func createSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Header is written last, once the triangle count is known.
	_, err = file.Seek(stlHeaderSize, io.SeekStart)
	if err != nil {
		return err
	}
	n, err := io.CopyBuffer(file, &stlReader{r: r}, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no triangles to write")
	}
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}
	header := stlHeader{
		Count: uint32(n / stlTriangleSize),
	}
	var buf [stlHeaderSize]byte
	header.put(buf[:])
	if _, err = file.Write(buf[:]); err != nil {
		return err
	}
	return file.Close()
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

func (h *stlHeader) get(b []byte) {
	_ = b[83] // early bounds check
	h.Count = binary.LittleEndian.Uint32(b[80:])
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t *stlTriangle) set(tri ms3.Triangle) {
	norm := ms3.Unit(tri.Normal())
	t.Normal = arrayFromVec(norm)
	t.Vertex1 = arrayFromVec(tri[0])
	t.Vertex2 = arrayFromVec(tri[1])
	t.Vertex3 = arrayFromVec(tri[2])
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0) // Zero out attributes.
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func (t stlTriangle) validate() error {
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	return nil
}

func arrayFromVec(v ms3.Vec) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func vecFromArray(f [3]float32) ms3.Vec {
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

func (t stlTriangle) Triangle() ms3.Triangle {
	return ms3.Triangle{vecFromArray(t.Vertex1), vecFromArray(t.Vertex2), vecFromArray(t.Vertex3)}
}
