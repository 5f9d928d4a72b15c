package render

import (
	"bytes"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells)

	want := []byte{
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0xff, 0xff, 0xff, 0xff,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf %v, want %v", buf, want)
	}
}
