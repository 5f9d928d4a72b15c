package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewSeededGridDimensionMismatch(t *testing.T) {
	cells := make([]uint8, 399*400)
	if _, err := NewSeededGrid(400, 400, cells); !errors.Is(err, ErrSeedDimensions) {
		t.Fatalf("got err=%v, want ErrSeedDimensions", err)
	}
}

func TestNewSeededGridCopiesCells(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	g, err := NewSeededGrid(2, 2, cells)
	if err != nil {
		t.Fatalf("seed grid: %v", err)
	}
	cells[0] = 0
	if !g.At(0, 0) {
		t.Fatalf("grid aliased the seed slice")
	}
}

func TestCommitSwapsBuffers(t *testing.T) {
	g := NewGrid(3, 2)
	next := []uint8{1, 0, 1, 0, 1, 0}
	copy(g.Scratch(), next)

	g.Commit()

	if !bytes.Equal(g.Current(), next) {
		t.Fatalf("committed state %v, want %v", g.Current(), next)
	}
	// The previously committed buffer is now the scratch target.
	for _, v := range g.Scratch() {
		if v != 0 {
			t.Fatalf("scratch buffer not the old front: %v", g.Scratch())
		}
	}
}

func TestCommitReadbackIsExact(t *testing.T) {
	g := NewGrid(4, 4)
	want := make([]uint8, 16)
	for i := range want {
		want[i] = uint8(i % 2)
	}
	copy(g.Scratch(), want)
	g.Commit()

	if !bytes.Equal(g.Current(), want) {
		t.Fatalf("readback differs from committed cells")
	}
	// A second commit swaps back; nothing is lost either way.
	g.Commit()
	g.Commit()
	if !bytes.Equal(g.Current(), want) {
		t.Fatalf("double swap corrupted the committed cells")
	}
}

func TestAtOutOfBoundsIsDead(t *testing.T) {
	g := NewGrid(2, 2)
	for i := range g.Current() {
		g.Current()[i] = 1
	}
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {2, 2}} {
		if g.At(xy[0], xy[1]) {
			t.Fatalf("out-of-bounds cell (%d,%d) reported alive", xy[0], xy[1])
		}
	}
	if !g.At(1, 1) {
		t.Fatalf("in-bounds live cell reported dead")
	}
}

func TestLoadReplacesCurrent(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Load([]uint8{1, 1, 0, 0}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !g.At(0, 0) || !g.At(1, 0) || g.At(0, 1) {
		t.Fatalf("load did not replace the committed state")
	}
	if err := g.Load(make([]uint8, 3)); !errors.Is(err, ErrSeedDimensions) {
		t.Fatalf("got err=%v, want ErrSeedDimensions", err)
	}
}
