package glheight

import (
	"bytes"
	_ "embed"
	"io"
	"strconv"

	"github.com/soypat/geosphere/height"
	"github.com/soypat/glgl/math/ms3"
)

//go:embed planet.glsl
var planetSource []byte

const header = `#shader compute
#version 430
layout(local_size_x = 1, local_size_y = 1, local_size_z = 1) in;
layout(rgba32f, binding = 0) uniform image2D in_tex;
layout(r32f, binding = 1) uniform image2D out_tex;
`

// WriteProgram writes the combined glgl compute program evaluating planet
// terrain for cfg. The noise offsets derived from cfg.Seed are baked into the
// program as constants. cfg must be valid.
func WriteProgram(w io.Writer, cfg height.PlanetConfig) (int, error) {
	offsets := cfg.NoiseOffsets()
	b := make([]byte, 0, len(header)+2048)
	b = append(b, header...)
	b = appendSimplexDecls(b, "continents", cfg.Continents, offsets[0])
	b = appendSimplexDecls(b, "mask", cfg.Mask, offsets[1])

	m := cfg.Mountains
	b = appendIntDecl(b, "mountainsLayers", m.Layers)
	b = appendFloatDecl(b, "mountainsLacunarity", m.Lacunarity)
	b = appendFloatDecl(b, "mountainsPersistence", m.Persistence)
	b = appendFloatDecl(b, "mountainsScale", m.Scale)
	b = appendFloatDecl(b, "mountainsPower", m.Power)
	b = appendFloatDecl(b, "mountainsElevation", m.Elevation)
	b = appendFloatDecl(b, "mountainsGain", m.Gain)
	b = appendFloatDecl(b, "mountainsVerticalShift", m.VerticalShift)
	b = appendFloatDecl(b, "mountainsPeakSmoothing", m.PeakSmoothing)
	b = appendVec3Decl(b, "mountainsOffset", offsets[2])

	b = appendFloatDecl(b, "oceanDepthMultiplier", cfg.OceanDepthMultiplier)
	b = appendFloatDecl(b, "oceanFloorDepth", cfg.OceanFloorDepth)
	b = appendFloatDecl(b, "oceanFloorSmoothing", cfg.OceanFloorSmoothing)
	b = appendFloatDecl(b, "mountainBlend", cfg.MountainBlend)

	n, err := w.Write(b)
	if err != nil {
		return n, err
	}
	n2, err := io.Copy(w, bytes.NewReader(planetSource))
	return n + int(n2), err
}

func appendSimplexDecls(b []byte, prefix string, s *height.SimplexSettings, offset ms3.Vec) []byte {
	b = appendIntDecl(b, prefix+"Layers", s.Layers)
	b = appendFloatDecl(b, prefix+"Lacunarity", s.Lacunarity)
	b = appendFloatDecl(b, prefix+"Persistence", s.Persistence)
	b = appendFloatDecl(b, prefix+"Scale", s.Scale)
	b = appendFloatDecl(b, prefix+"Elevation", s.Elevation)
	b = appendFloatDecl(b, prefix+"VerticalShift", s.VerticalShift)
	return appendVec3Decl(b, prefix+"Offset", offset)
}

func appendIntDecl(b []byte, name string, v int) []byte {
	b = append(b, "const int "...)
	b = append(b, name...)
	b = append(b, '=')
	b = strconv.AppendInt(b, int64(v), 10)
	return append(b, ';', '\n')
}

func appendFloatDecl(b []byte, name string, v float32) []byte {
	b = append(b, "const float "...)
	b = append(b, name...)
	b = append(b, '=')
	b = appendFloat(b, v)
	return append(b, ';', '\n')
}

func appendVec3Decl(b []byte, name string, v ms3.Vec) []byte {
	b = append(b, "const vec3 "...)
	b = append(b, name...)
	b = append(b, "=vec3("...)
	b = appendFloat(b, v.X)
	b = append(b, ',')
	b = appendFloat(b, v.Y)
	b = append(b, ',')
	b = appendFloat(b, v.Z)
	return append(b, ')', ';', '\n')
}

// appendFloat appends a GLSL float literal. Trailing zeroes are trimmed but
// the decimal point is kept.
func appendFloat(b []byte, v float32) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'f', 6, 32)
	idx := bytes.IndexByte(b[start:], '.')
	end := len(b)
	for i := len(b) - 1; idx >= 0 && i > idx+start && b[i] == '0'; i-- {
		end--
	}
	return b[:end]
}
