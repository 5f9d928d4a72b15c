//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// lifeShaderSrc computes one Game of Life generation. Each destination
// pixel samples its eight neighbors from the committed-generation texture.
// imageSrc0At returns vec4(0) outside the source region, so off-board
// neighbors always read as dead and the board never wraps.
var lifeShaderSrc = []byte(`//kage:unit pixels

package main

func live(p vec2) float {
	return step(0.5, imageSrc0At(p).r)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	n := live(srcPos+vec2(-1, -1)) + live(srcPos+vec2(0, -1)) + live(srcPos+vec2(1, -1)) +
		live(srcPos+vec2(-1, 0)) + live(srcPos+vec2(1, 0)) +
		live(srcPos+vec2(-1, 1)) + live(srcPos+vec2(0, 1)) + live(srcPos+vec2(1, 1))

	next := 0.0
	if live(srcPos) > 0.5 {
		if n > 1.5 && n < 3.5 {
			next = 1.0
		}
	} else if n > 2.5 && n < 3.5 {
		next = 1.0
	}
	return vec4(next, next, next, 1)
}
`)

// presentShaderSrc draws the board texture under the viewport transform:
// uniform magnification about the center, then the pan offset, sampled at
// texel centers so cells stay sharp-edged. Samples that land off the board
// resolve to the fixed border color.
var presentShaderSrc = []byte(`//kage:unit pixels

package main

var Scale float
var Offset vec2
var Border vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	center := vec2(0.5, 0.5)

	uv := (srcPos-origin)/size
	uv = (uv-center)/Scale + center + Offset
	if uv.x < 0.0 || uv.x >= 1.0 || uv.y < 0.0 || uv.y >= 1.0 {
		return Border
	}
	return imageSrc0At(floor(uv*size) + center + origin)
}
`)

// NewLifeShader compiles the generation-step shader.
func NewLifeShader() (*ebiten.Shader, error) {
	return ebiten.NewShader(lifeShaderSrc)
}

// NewPresentShader compiles the viewport shader.
func NewPresentShader() (*ebiten.Shader, error) {
	return ebiten.NewShader(presentShaderSrc)
}
