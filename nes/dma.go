package nes

// dmaCycles is the canonical stall charged to the CPU for an OAM DMA
// transfer (spec.md §4.5 permits 513 or 514 uniformly; this design uses the
// higher figure throughout).
const dmaCycles = 514

// dma is the OAM DMA unit living on the CPU bus. A write to $4014 arms it
// with the source page; System.StepFrame then performs the 256-byte copy
// into PPU OAM and charges the CPU stall on its next loop iteration.
type dma struct {
	pending bool
	page    byte
}

func (d *dma) write(page byte) {
	d.page = page
	d.pending = true
}

// run copies 256 bytes from work RAM (page<<8 .. page<<8+0xFF) into PPU OAM,
// honoring CPU-bus mirror semantics for the source read.
func (d *dma) run(bus *CpuBus) {
	base := uint16(d.page) << 8
	for i := 0; i < 256; i++ {
		data := bus.Read(base + uint16(i))
		bus.Ppu.oamWrite(byte(i), data)
	}
	d.pending = false
}
