//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads CPU cell buffers into a texture the presenter can
// draw. Used by the cpu backend; the gpu pipeline keeps its state on the
// GPU and never goes through here.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Upload copies cells into the texture and returns it.
func (gp *GridPainter) Upload(cells []uint8) *ebiten.Image {
	if len(cells) == gp.w*gp.h {
		fillCellsRGBA(gp.buf, cells)
		gp.img.WritePixels(gp.buf)
	}
	return gp.img
}
