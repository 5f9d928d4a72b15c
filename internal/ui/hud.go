//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD paints a small status readout in the top-left corner of the screen.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle flips the HUD visibility.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Draw paints the status lines over the scene.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.visible {
		return
	}
	lines := []string{
		fmt.Sprintf("gen %d  %s", st.Generation, runLabel(st.Running)),
		fmt.Sprintf("scale %.1f  offset %+.2f %+.2f", st.Scale, st.OffsetX, st.OffsetY),
		fmt.Sprintf("%d gen/s  %s backend", st.TPS, st.Backend),
	}
	face := basicfont.Face7x13

	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudPadding), float64(len(lines)*hudLineHeight+2*hudPadding))
	op.ColorM.Scale(0, 0, 0, 0.6)
	screen.DrawImage(h.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, face, hudPadding, hudPadding+(i+1)*hudLineHeight-4, color.White)
	}
}

func runLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}
