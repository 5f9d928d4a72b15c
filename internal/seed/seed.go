// Package seed turns external resources into initial board states. Seed
// images are strict monochrome: an opaque white pixel is a live cell, an
// opaque black pixel is a dead one, and anything else is rejected so a
// board never starts from a half-specified state.
package seed

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"math/rand/v2"
	"os"
)

var (
	// ErrDimensionMismatch is returned when the seed image size differs
	// from the configured grid size.
	ErrDimensionMismatch = errors.New("seed image dimensions do not match grid")
	// ErrPixelFormat is returned when a pixel encodes neither a live nor
	// a dead cell.
	ErrPixelFormat = errors.New("seed image pixel is neither live nor dead")
)

// LoadFile reads and decodes the seed image at path for a w by h board.
func LoadFile(path string, w, h int) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode seed image %s: %w", path, err)
	}
	return FromImage(img, w, h)
}

// FromImage converts a decoded seed image into a cell buffer.
func FromImage(img image.Image, w, h int) ([]uint8, error) {
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("%w: image is %dx%d, want %dx%d", ErrDimensionMismatch, b.Dx(), b.Dy(), w, h)
	}

	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			switch {
			case a == 0xffff && r == 0xffff && g == 0xffff && bl == 0xffff:
				cells[y*w+x] = 1
			case a == 0xffff && r == 0 && g == 0 && bl == 0:
				// dead
			default:
				return nil, fmt.Errorf("%w: pixel (%d, %d)", ErrPixelFormat, x, y)
			}
		}
	}
	return cells, nil
}

// Random returns a uniformly random board, deterministic in seed.
func Random(w, h int, seed int64) []uint8 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	cells := make([]uint8, w*h)
	for i := range cells {
		cells[i] = uint8(rng.IntN(2))
	}
	return cells
}
