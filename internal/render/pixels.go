package render

// Cell colors used for the board textures. The shaders classify a cell by
// its red channel, so live must be pure white and dead pure black.
var (
	liveRGBA = [4]byte{0xff, 0xff, 0xff, 0xff}
	deadRGBA = [4]byte{0x00, 0x00, 0x00, 0xff}
)

// fillCellsRGBA expands binary cell values into RGBA pixels in buf, which
// must hold 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := deadRGBA
		if c != 0 {
			px = liveRGBA
		}
		copy(buf[i*4:], px[:])
	}
}
