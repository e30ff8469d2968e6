package render

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/soypat/geosphere"
	"github.com/soypat/glgl/math/ms3"
)

// CreateOBJ writes the mesh to a Wavefront OBJ file at path.
func CreateOBJ(path string, m geosphere.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	err = WriteOBJ(file, m)
	if err != nil {
		return err
	}
	return file.Close()
}

// WriteOBJ writes the mesh in Wavefront OBJ format: one v line per vertex,
// one vn line per normal when the mesh has normals and one f line per
// triangle. Faces are wound counter-clockwise seen from outside.
func WriteOBJ(w io.Writer, m geosphere.Mesh) error {
	if len(m.Indices) == 0 {
		return errors.New("empty mesh")
	}
	hasNormals := len(m.Normals) == len(m.Vertices)
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range m.Vertices {
		buf = appendVecLine(buf[:0], "v ", v)
		bw.Write(buf)
	}
	if hasNormals {
		for _, n := range m.Normals {
			buf = appendVecLine(buf[:0], "vn ", n)
			bw.Write(buf)
		}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		// OBJ indices are 1-based.
		a, b, c := m.Indices[i]+1, m.Indices[i+2]+1, m.Indices[i+1]+1
		buf = append(buf[:0], 'f')
		for _, idx := range [3]uint32{a, b, c} {
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(idx), 10)
			if hasNormals {
				buf = append(buf, '/', '/')
				buf = strconv.AppendUint(buf, uint64(idx), 10)
			}
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}

func appendVecLine(b []byte, prefix string, v ms3.Vec) []byte {
	b = append(b, prefix...)
	b = strconv.AppendFloat(b, float64(v.X), 'g', -1, 32)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, float64(v.Y), 'g', -1, 32)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, float64(v.Z), 'g', -1, 32)
	return append(b, '\n')
}
