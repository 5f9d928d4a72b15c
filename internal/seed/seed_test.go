package seed

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func monoImage(w, h int, live [][2]int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 0xff})
		}
	}
	for _, xy := range live {
		img.SetNRGBA(xy[0], xy[1], color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := monoImage(3, 2, [][2]int{{0, 0}, {2, 1}})
	cells, err := FromImage(img, 3, 2)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []uint8{1, 0, 0, 0, 0, 1}
	if !bytes.Equal(cells, want) {
		t.Fatalf("cells %v, want %v", cells, want)
	}
}

func TestFromImageDimensionMismatch(t *testing.T) {
	img := monoImage(399, 400, nil)
	if _, err := FromImage(img, 400, 400); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got err=%v, want ErrDimensionMismatch", err)
	}
}

func TestFromImageRejectsAmbiguousPixels(t *testing.T) {
	gray := monoImage(2, 2, nil)
	gray.SetNRGBA(1, 0, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	if _, err := FromImage(gray, 2, 2); !errors.Is(err, ErrPixelFormat) {
		t.Fatalf("gray pixel: got err=%v, want ErrPixelFormat", err)
	}

	translucent := monoImage(2, 2, nil)
	translucent.SetNRGBA(0, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x7f})
	if _, err := FromImage(translucent, 2, 2); !errors.Is(err, ErrPixelFormat) {
		t.Fatalf("translucent pixel: got err=%v, want ErrPixelFormat", err)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	img := monoImage(4, 4, [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	path := filepath.Join(t.TempDir(), "seed.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	cells, err := LoadFile(path, 4, 4)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	alive := 0
	for _, c := range cells {
		alive += int(c)
	}
	if alive != 4 || cells[1*4+1] != 1 || cells[2*4+2] != 1 {
		t.Fatalf("round-tripped board wrong: %v", cells)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.png"), 4, 4); err == nil {
		t.Fatalf("missing file did not error")
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(16, 16, 42)
	b := Random(16, 16, 42)
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed produced different boards")
	}
	c := Random(16, 16, 43)
	if bytes.Equal(a, c) {
		t.Fatalf("different seeds produced identical boards")
	}
	if len(a) != 16*16 {
		t.Fatalf("board has %d cells, want %d", len(a), 16*16)
	}
}
