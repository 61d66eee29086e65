package nes

// Ppu is the picture processing unit: scanline/dot state machine, internal
// OAM, palette and nametable VRAM, and the register window the CPU bus
// forwards $2000-$2007 accesses to.
type Ppu struct {
	Cart       *Cartridge
	interrupts *Interrupts

	vram    [2048]byte
	palette [32]byte
	Oam     Oam

	ctrl    byte
	mask    byte
	status  byte
	oamAddr byte

	scrollX  byte
	scrollY  byte
	vramAddr uint16
	writeHi  bool // w latch, shared between $2005 and $2006
	readBuf  byte

	dot      int
	scanline int

	frameSeq uint64
}

// NewPpu returns a PPU wired to the given interrupt lines. The cartridge is
// attached separately once it's loaded, matching the teacher's two-step
// wiring (NewPpu then ConnectCartridge).
func NewPpu(interrupts *Interrupts) *Ppu {
	p := &Ppu{interrupts: interrupts}
	p.Reset()
	return p
}

func (p *Ppu) ConnectCartridge(c *Cartridge) { p.Cart = c }

func (p *Ppu) Reset() {
	p.vram = [2048]byte{}
	p.palette = [32]byte{}
	p.Oam.clear()

	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0

	p.scrollX = 0
	p.scrollY = 0
	p.vramAddr = 0
	p.writeHi = false
	p.readBuf = 0

	p.dot = 0
	p.scanline = 0
}

// control register ($2000) bit helpers.
func (p *Ppu) baseNametable() byte { return p.ctrl & 0x03 }
func (p *Ppu) vramIncrement() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}
func (p *Ppu) spritePatternBase() uint16 {
	if p.ctrl&0x08 != 0 {
		return 0x1000
	}
	return 0x0000
}
func (p *Ppu) bgPatternBase() uint16 {
	if p.ctrl&0x10 != 0 {
		return 0x1000
	}
	return 0x0000
}
func (p *Ppu) nmiOnVBlank() bool { return p.ctrl&0x80 != 0 }

// mask register ($2001) bit helpers.
func (p *Ppu) bgEnabled() bool      { return p.mask&0x08 != 0 }
func (p *Ppu) spritesEnabled() bool { return p.mask&0x10 != 0 }

// ReadRegister is the CPU-side accessor for the low three bits of
// $2000-$2007, per spec.md §4.2.
func (p *Ppu) ReadRegister(reg byte) byte {
	switch reg {
	case 2: // PPUSTATUS
		result := p.status & 0xE0
		p.status &^= 0x80 // clear vblank
		p.writeHi = false
		return result
	case 4: // OAMDATA
		return p.Oam.read(p.oamAddr)
	case 7: // PPUDATA
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister is the CPU-side mutator for $2000-$2007.
func (p *Ppu) WriteRegister(reg byte, data byte) {
	switch reg {
	case 0: // PPUCTRL
		p.ctrl = data
	case 1: // PPUMASK
		p.mask = data
	case 3: // OAMADDR
		p.oamAddr = data
	case 4: // OAMDATA
		p.Oam.write(p.oamAddr, data)
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.writeHi {
			p.scrollX = data
		} else {
			p.scrollY = data
		}
		p.writeHi = !p.writeHi
	case 6: // PPUADDR
		if !p.writeHi {
			p.vramAddr = (uint16(data) << 8) & 0x3FFF
		} else {
			p.vramAddr = (p.vramAddr & 0x3F00) | uint16(data)
		}
		p.writeHi = !p.writeHi
	case 7: // PPUDATA
		p.writeData(data)
	}
}

// oamWrite is used by the DMA unit, which writes OAM directly without going
// through OAMADDR.
func (p *Ppu) oamWrite(index byte, data byte) { p.Oam.write(index, data) }

func (p *Ppu) readData() byte {
	addr := p.vramAddr & 0x3FFF
	var value byte
	if addr >= 0x3F00 {
		value = p.readPalette(byte(addr & 0x1F))
	} else {
		value = p.readBuf
		p.readBuf = p.busRead(addr)
	}
	p.vramAddr += p.vramIncrement()
	return value
}

func (p *Ppu) writeData(data byte) {
	addr := p.vramAddr & 0x3FFF
	p.busWrite(addr, data)
	p.vramAddr += p.vramIncrement()
}

// busRead/busWrite implement the PPU bus: CHR, nametable VRAM (with
// mirroring), and palette RAM, per spec.md §3.
func (p *Ppu) busRead(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.Cart.readCHR(addr)
	case addr < 0x3F00:
		return p.vram[p.mirrorNametable(addr)]
	default:
		return p.readPalette(byte(addr & 0x1F))
	}
}

func (p *Ppu) busWrite(addr uint16, data byte) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.Cart.writeCHR(addr, data)
	case addr < 0x3F00:
		p.vram[p.mirrorNametable(addr)] = data
	default:
		p.writePalette(byte(addr&0x1F), data)
	}
}

// mirrorNametable folds the logical $2000-$2FFF (and its $3000-$3EFF
// mirror) 4KiB nametable space down onto 2KiB of physical VRAM, per the
// cartridge's mirroring mode.
func (p *Ppu) mirrorNametable(addr uint16) uint16 {
	local := (addr - 0x2000) & 0x0FFF
	var bank uint16
	if p.Cart != nil && p.Cart.Mirroring == MirrorHorizontal {
		bank = (local >> 11) & 1
	} else {
		bank = (local >> 10) & 1
	}
	return bank*0x400 + (local & 0x3FF)
}

// writePalette stores a palette byte, folding the four sprite
// universal-background mirror addresses down onto their background
// counterparts. Non-mirror addresses ($04/$08/$0C included) are stored
// as-is. readPalette applies the same fold, so both addresses of a mirrored
// pair observe one stored byte.
func (p *Ppu) writePalette(addr byte, data byte) {
	addr &= 0x1F
	if addr == 0x10 || addr == 0x14 || addr == 0x18 || addr == 0x1C {
		addr -= 0x10
	}
	p.palette[addr] = data
}

// readPalette reconstructs the mirrored read view: the four sprite
// universal-background entries return their background mirror, everything
// else reads its own stored byte.
func (p *Ppu) readPalette(addr byte) byte {
	addr &= 0x1F
	if addr == 0x10 || addr == 0x14 || addr == 0x18 || addr == 0x1C {
		addr -= 0x10
	}
	return p.palette[addr]
}

// Run advances the PPU by the given number of dots (3 per CPU cycle, per
// spec.md §2) and returns the completed Frame exactly once, at the end of
// the pre-render scanline.
func (p *Ppu) Run(dots int) *Frame {
	var frame *Frame
	for i := 0; i < dots; i++ {
		if f := p.tick(); f != nil {
			frame = f
		}
	}
	return frame
}

func (p *Ppu) tick() *Frame {
	var frame *Frame

	switch {
	case p.scanline == 241 && p.dot == 1:
		p.status |= 0x80 // vblank
		if p.nmiOnVBlank() {
			p.interrupts.AssertNMI()
		}
	case p.scanline >= 0 && p.scanline <= 239 && p.dot == 1:
		if p.bgEnabled() && p.spritesEnabled() && int(p.Oam.sprites[0].y) == p.scanline {
			p.status |= 0x40 // sprite-0 hit
		}
	case p.scanline == 261 && p.dot == 1:
		p.status &^= 0xE0 // clear vblank, sprite0hit, overflow
		p.interrupts.DeassertNMI()
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			frame = p.buildFrame()
		}
	}

	return frame
}

// buildFrame assembles the background tile list and sprite list from the
// PPU's final register/memory state for the frame that just completed. This
// is a coarse, whole-frame pass rather than the hardware's per-scanline
// fetch pipeline, matching spec.md §4.2's own coarse sprite-0 model in
// spirit: mid-frame scroll or palette changes are not captured per-line.
func (p *Ppu) buildFrame() *Frame {
	p.frameSeq++

	f := &Frame{
		Seq:     p.frameSeq,
		ScrollX: int(p.scrollX),
		ScrollY: int(p.scrollY),
	}
	copy(f.Palette[:], p.palette[:])

	if p.bgEnabled() {
		f.Background = p.buildBackground()
	}
	if p.spritesEnabled() {
		f.Sprites = p.buildSprites()
	}

	return f
}

// buildBackground walks the 33x30 visible tile grid (one extra column to
// cover the scroll-shifted edge), resolving each screen tile position to a
// coarse-scrolled tile coordinate and, when that coordinate wraps past the
// 32x30 nametable, the adjacent logical nametable, per spec.md §4.2
// ("computes the effective tile coordinates from scroll_x, scroll_y, and the
// base nametable id"). Screen position itself stays tx*8/ty*8; the renderer
// applies only the fine (sub-tile) scroll remainder.
func (p *Ppu) buildBackground() []BgTile {
	const cols, rows = 33, 30
	tiles := make([]BgTile, 0, cols*rows)

	patternBase := p.bgPatternBase()
	baseNt := int(p.baseNametable())
	coarseScrollX := int(p.scrollX) / 8
	coarseScrollY := int(p.scrollY) / 8

	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			coarseX := coarseScrollX + tx
			coarseY := coarseScrollY + ty

			ntX := baseNt & 1
			ntY := (baseNt >> 1) & 1
			if coarseX >= 32 {
				coarseX -= 32
				ntX ^= 1
			}
			if coarseY >= 30 {
				coarseY -= 30
				ntY ^= 1
			}
			nametableBase := uint16(0x2000) + uint16(ntY*2+ntX)*0x400

			tileIndex := p.busRead(nametableBase + uint16(coarseY*32+coarseX))

			attrAddr := nametableBase + 0x03C0 + uint16((coarseY/4)*8+(coarseX/4))
			attr := p.busRead(attrAddr)
			quadrant := ((coarseY%4)/2)*2 + (coarseX%4)/2
			paletteID := (attr >> (quadrant * 2)) & 0x03

			tiles = append(tiles, BgTile{
				X:         tx * 8,
				Y:         ty * 8,
				PaletteID: paletteID,
				Pattern:   p.readPattern(patternBase, tileIndex),
			})
		}
	}

	return tiles
}

// buildSprites walks the 64 OAM entries and keeps every sprite with a
// plausible on-screen Y, per spec.md §4.2.
func (p *Ppu) buildSprites() []SpriteDraw {
	patternBase := p.spritePatternBase()
	sprites := make([]SpriteDraw, 0, 64)

	for i, s := range p.Oam.sprites {
		y := int(s.y)
		if y >= 240 {
			continue // sprite parked off-screen
		}
		sprites = append(sprites, SpriteDraw{
			X:         int(s.x),
			Y:         y,
			PaletteID: s.paletteID(),
			Priority:  s.priorityBehindBG(),
			FlipH:     s.flippedHorizontal(),
			FlipV:     s.flippedVertical(),
			Pattern:   p.readPattern(patternBase, s.tileIndex),
			OAMIndex:  i,
		})
	}

	return sprites
}

// readPattern decodes one 8x8 tile's two bit-planes into 2-bit pixel
// values, per spec.md §4.2's pattern-fetch formula.
func (p *Ppu) readPattern(base uint16, tileIndex byte) [8][8]byte {
	var out [8][8]byte
	addr := base + uint16(tileIndex)*16

	for r := 0; r < 8; r++ {
		lo := p.busRead(addr + uint16(r))
		hi := p.busRead(addr + uint16(r) + 8)
		for c := 0; c < 8; c++ {
			shift := 7 - c
			out[r][c] = ((lo>>shift)&1) | (((hi >> shift) & 1) << 1)
		}
	}

	return out
}
