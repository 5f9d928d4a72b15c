//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pipeline runs the generation step on the GPU. Two equally sized textures
// hold the board: front is the committed generation, back receives the next
// one. A step draws front into back through the life shader and then swaps
// the two handles, so a reader always sees a fully written generation.
type Pipeline struct {
	w, h   int
	front  *ebiten.Image
	back   *ebiten.Image
	shader *ebiten.Shader
	buf    []byte
}

// NewPipeline compiles the life shader, allocates both state textures and
// uploads the seed cells.
func NewPipeline(w, h int, cells []uint8) (*Pipeline, error) {
	shader, err := NewLifeShader()
	if err != nil {
		return nil, fmt.Errorf("compile life shader: %w", err)
	}
	p := &Pipeline{
		w:      w,
		h:      h,
		front:  ebiten.NewImage(w, h),
		back:   ebiten.NewImage(w, h),
		shader: shader,
		buf:    make([]byte, 4*w*h),
	}
	if err := p.Reset(cells); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset replaces the committed state with cells.
func (p *Pipeline) Reset(cells []uint8) error {
	if len(cells) != p.w*p.h {
		return fmt.Errorf("reset: got %d cells, want %dx%d", len(cells), p.w, p.h)
	}
	fillCellsRGBA(p.buf, cells)
	p.front.WritePixels(p.buf)
	return nil
}

// Step computes the next generation into the back texture and commits it by
// swapping the texture handles.
func (p *Pipeline) Step() {
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = p.front
	op.Blend = ebiten.BlendCopy
	p.back.DrawRectShader(p.w, p.h, p.shader, op)
	p.front, p.back = p.back, p.front
}

// Frame returns the committed state texture.
func (p *Pipeline) Frame() *ebiten.Image {
	return p.front
}
