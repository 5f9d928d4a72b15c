//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"lifescope/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter draws a committed board texture to the screen under the current
// viewport transform. It only ever reads the texture it is handed.
type Presenter struct {
	shader *ebiten.Shader
	border []float32
}

// NewPresenter compiles the viewport shader. border fills every sample that
// falls outside the board.
func NewPresenter(border color.RGBA) (*Presenter, error) {
	shader, err := NewPresentShader()
	if err != nil {
		return nil, fmt.Errorf("compile present shader: %w", err)
	}
	return &Presenter{
		shader: shader,
		border: []float32{
			float32(border.R) / 255,
			float32(border.G) / 255,
			float32(border.B) / 255,
			float32(border.A) / 255,
		},
	}, nil
}

// Draw stretches the board over the whole destination surface. The
// destination is re-measured on every call so window resizes take effect
// immediately.
func (p *Presenter) Draw(dst, src *ebiten.Image, view core.Viewport) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	db := dst.Bounds()

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Blend = ebiten.BlendCopy
	op.Uniforms = map[string]any{
		"Scale":  float32(view.Scale),
		"Offset": []float32{float32(view.OffsetX), float32(view.OffsetY)},
		"Border": p.border,
	}
	op.GeoM.Scale(float64(db.Dx())/float64(sw), float64(db.Dy())/float64(sh))
	dst.DrawRectShader(sw, sh, p.shader, op)
}
