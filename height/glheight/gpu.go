// Package glheight evaluates planet terrain heights with an OpenGL compute
// shader. It produces the same kind of terrain as height.Planet from the same
// configuration, though not the same values: the shader's simplex noise
// differs from the CPU noise implementation.
//
// All calls must be made from the thread holding the current OpenGL 4.3+
// context, see glgl.InitWithCurrentWindow33.
package glheight

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/soypat/geosphere/height"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// maxWidth is the texture width used to lay out positions. Longer inputs wrap
// onto more rows.
const maxWidth = 4096

// Provider is a height provider running on the GPU.
type Provider struct {
	prog glgl.Program
	cfg  height.PlanetConfig
}

// NewProvider compiles the terrain program for cfg.
func NewProvider(cfg height.PlanetConfig) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var source bytes.Buffer
	_, err := WriteProgram(&source, cfg)
	if err != nil {
		return nil, err
	}
	combinedSource, err := glgl.ParseCombined(&source)
	if err != nil {
		return nil, err
	}
	glprog, err := glgl.CompileProgram(combinedSource)
	if err != nil {
		return nil, errors.New(string(combinedSource.Compute) + "\n" + err.Error())
	}
	return &Provider{prog: glprog, cfg: cfg.Clone()}, nil
}

// Evaluate implements geosphere.HeightProvider.
func (p *Provider) Evaluate(unit []ms3.Vec) ([]float32, error) {
	if len(unit) == 0 {
		return nil, errors.New("glheight: no vertices to evaluate")
	}
	width, rows := layout(len(unit))
	pos := unit
	if width*rows != len(unit) {
		// Pad the last row, the extra results are discarded.
		pos = make([]ms3.Vec, width*rows)
		copy(pos, unit)
		for i := len(unit); i < len(pos); i++ {
			pos[i] = ms3.Vec{Y: 1}
		}
	}
	heights := make([]float32, len(pos))

	p.prog.Bind()
	posCfg := glgl.TextureImgConfig{
		Type:           glgl.Texture2D,
		Width:          width,
		Height:         rows,
		Access:         glgl.ReadOnly,
		Format:         gl.RGB,
		MinFilter:      gl.NEAREST,
		MagFilter:      gl.NEAREST,
		Xtype:          gl.FLOAT,
		InternalFormat: gl.RGBA32F,
		ImageUnit:      0,
	}
	posTex, err := glgl.NewTextureFromImage(posCfg, pos)
	if err != nil {
		return nil, fmt.Errorf("glheight: position texture: %w", err)
	}
	defer posTex.Delete()
	heightCfg := glgl.TextureImgConfig{
		Type:           glgl.Texture2D,
		Width:          width,
		Height:         rows,
		Access:         glgl.WriteOnly,
		Format:         gl.RED,
		MinFilter:      gl.NEAREST,
		MagFilter:      gl.NEAREST,
		Xtype:          gl.FLOAT,
		InternalFormat: gl.R32F,
		ImageUnit:      1,
	}
	heightTex, err := glgl.NewTextureFromImage(heightCfg, heights)
	if err != nil {
		return nil, fmt.Errorf("glheight: height texture: %w", err)
	}
	defer heightTex.Delete()
	err = p.prog.RunCompute(width, rows, 1)
	if err != nil {
		return nil, err
	}
	err = glgl.GetImage(heights, heightTex, heightCfg)
	if err != nil {
		return nil, err
	}
	return heights[:len(unit)], nil
}

// Config returns the configuration the program was compiled for.
func (p *Provider) Config() height.PlanetConfig { return p.cfg.Clone() }

// layout returns the texture dimensions holding n positions.
func layout(n int) (width, rows int) {
	if n <= maxWidth {
		return n, 1
	}
	return maxWidth, (n + maxWidth - 1) / maxWidth
}
