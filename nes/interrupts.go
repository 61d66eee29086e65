package nes

// Interrupts is the shared NMI/IRQ line pair between the CPU and PPU. NMI is
// raised by the PPU at the start of vblank; IRQ is left pluggable for future
// mappers but nothing in this design drives it today.
type Interrupts struct {
	nmi bool
	irq bool
}

// NewInterrupts returns a pair of deasserted interrupt lines.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

func (i *Interrupts) AssertNMI()          { i.nmi = true }
func (i *Interrupts) DeassertNMI()        { i.nmi = false }
func (i *Interrupts) IsNMIAsserted() bool { return i.nmi }

func (i *Interrupts) AssertIRQ()          { i.irq = true }
func (i *Interrupts) DeassertIRQ()        { i.irq = false }
func (i *Interrupts) IsIRQAsserted() bool { return i.irq }
