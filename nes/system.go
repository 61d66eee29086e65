package nes

// System owns one console instance: the shared interrupt lines, the CPU
// bus, the PPU, and the CPU itself, wired the way spec.md §2 describes the
// three clock domains cooperating.
type System struct {
	Interrupts *Interrupts
	Bus        *CpuBus
	Ppu        *Ppu
	Cpu        *Cpu6502

	cyclesRun uint64
	framesRun uint64
}

// NewSystem builds a System around a loaded cartridge and resets it to
// power-on state.
func NewSystem(cart *Cartridge) *System {
	interrupts := NewInterrupts()
	ppu := NewPpu(interrupts)
	ppu.ConnectCartridge(cart)
	bus := NewCpuBus(ppu, cart)
	cpu := NewCpu6502(bus, interrupts)

	s := &System{
		Interrupts: interrupts,
		Bus:        bus,
		Ppu:        ppu,
		Cpu:        cpu,
	}
	s.Reset()
	return s
}

func (s *System) Reset() {
	s.Cpu.Reset()
	s.Ppu.Reset()
}

// LatchButtons forwards the current button state to the controller port,
// per spec.md §6.
func (s *System) LatchButtons(buttons [8]bool) {
	s.Bus.Controller.Latch(buttons)
}

// StepFrame runs the CPU and PPU, interleaving OAM DMA stalls, until a
// complete Frame is produced, per spec.md §2's dot/cycle ratio.
func (s *System) StepFrame() *Frame {
	for {
		if s.Bus.dmaPending() {
			s.Bus.runDMA()
			if f := s.Ppu.Run(dmaCycles * 3); f != nil {
				s.cyclesRun += dmaCycles
				s.framesRun++
				return f
			}
			s.cyclesRun += dmaCycles
			continue
		}

		cycles := s.Cpu.Step()
		s.cyclesRun += uint64(cycles)

		if f := s.Ppu.Run(cycles * 3); f != nil {
			s.framesRun++
			return f
		}
	}
}
