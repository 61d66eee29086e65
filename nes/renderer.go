package nes

// nesPalette is the 64-entry NTSC RGB color table, grounded on the
// teacher's ntscpalette.pal values (inlined as a literal so the renderer
// stays a pure function with no filesystem dependency).
var nesPalette = [64][3]byte{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}

const (
	frameWidth  = 256
	frameHeight = 256
	visibleRows = 224
)

// Render is a pure function from Frame to a 256x256x4 RGBA byte buffer, per
// spec.md §4.3. Rows 224-255 stay zero, matching real NES output.
func Render(f *Frame) []byte {
	buf := make([]byte, frameWidth*frameHeight*4)

	// Track background opacity per pixel so sprite priority can be
	// resolved without re-walking the tile list.
	var bgOpaque [frameWidth][visibleRows]bool

	for _, tile := range f.Background {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				pixel := tile.Pattern[row][col]
				x := tile.X + col - f.ScrollX%8
				y := tile.Y + row - f.ScrollY%8
				if x < 0 || x >= frameWidth || y < 0 || y >= visibleRows {
					continue
				}
				if pixel != 0 {
					bgOpaque[x][y] = true
				}
				colorID := f.Palette[int(tile.PaletteID)*4+int(pixel)]
				setRGBA(buf, x, y, colorID)
			}
		}
	}

	for _, s := range f.Sprites {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				srcRow, srcCol := row, col
				if s.FlipV {
					srcRow = 7 - row
				}
				if s.FlipH {
					srcCol = 7 - col
				}
				pixel := s.Pattern[srcRow][srcCol]
				if pixel == 0 {
					continue // transparent
				}

				x := s.X + col
				y := s.Y + row
				if x < 0 || x >= frameWidth || y < 0 || y >= visibleRows {
					continue
				}
				if s.Priority && bgOpaque[x][y] {
					continue // sprite sits behind an opaque background pixel
				}

				colorID := f.Palette[int(s.PaletteID)*4+0x10+int(pixel)]
				setRGBA(buf, x, y, colorID)
			}
		}
	}

	return buf
}

func setRGBA(buf []byte, x, y int, paletteIndex byte) {
	rgb := nesPalette[paletteIndex&0x3F]
	offset := (y*frameWidth + x) * 4
	buf[offset+0] = rgb[0]
	buf[offset+1] = rgb[1]
	buf[offset+2] = rgb[2]
	buf[offset+3] = 255
}
