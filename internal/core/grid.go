package core

import (
	"errors"
	"fmt"
)

// ErrSeedDimensions is returned when seed data does not match the grid size.
var ErrSeedDimensions = errors.New("seed dimensions do not match grid")

// Grid stores the double-buffered cell state of the board in row-major
// order. The front buffer is the committed generation everything else reads;
// the back buffer is the scratch target the step engine writes into.
type Grid struct {
	W, H  int
	front []uint8
	back  []uint8
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, front: make([]uint8, w*h), back: make([]uint8, w*h)}
}

// NewSeededGrid allocates a grid whose committed state starts as cells.
func NewSeededGrid(w, h int, cells []uint8) (*Grid, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: got %d cells, want %dx%d", ErrSeedDimensions, len(cells), w, h)
	}
	g := NewGrid(w, h)
	copy(g.front, cells)
	return g, nil
}

// Current exposes the committed cell values.
func (g *Grid) Current() []uint8 { return g.front }

// Scratch exposes the buffer the next generation is written into.
func (g *Grid) Scratch() []uint8 { return g.back }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At reports whether the committed cell at (x, y) is alive. Coordinates
// outside the grid are always dead: the board has a fixed dead border and
// never wraps.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return false
	}
	return g.front[y*g.W+x] != 0
}

// Commit swaps the buffers, making the freshly written scratch buffer the
// committed state. The hand-off is a whole-buffer identity swap: a reader
// sees either the previous generation or the next one, never a mix.
func (g *Grid) Commit() {
	g.front, g.back = g.back, g.front
}

// Load replaces the committed state with cells.
func (g *Grid) Load(cells []uint8) error {
	if len(cells) != g.W*g.H {
		return fmt.Errorf("%w: got %d cells, want %dx%d", ErrSeedDimensions, len(cells), g.W, g.H)
	}
	copy(g.front, cells)
	return nil
}
