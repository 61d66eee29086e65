package main

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/font/basicfont"

	"github.com/brennanwhite/nesgo/nes"
)

// debugPanel renders CPU register state and a short disassembly window
// starting at PC, grounded on the teacher's printDebugCpu/printDebugMem text
// panel in main.go (there, a *text.Text was built and formatted but never
// actually drawn into the running window) and nes.Cpu6502.Disassemble.
type debugPanel struct {
	txt *text.Text
}

func newDebugPanel(orig pixel.Vec) *debugPanel {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &debugPanel{txt: text.New(orig, atlas)}
}

// draw refreshes the panel's text from the system's live CPU state and
// draws it at the given matrix, gated by -d in cmd/nesgo/app.go.
func (p *debugPanel) draw(target pixel.Target, sys *nes.System, matrix pixel.Matrix) {
	p.txt.Clear()

	cpu := sys.Cpu
	stats := sys.Stats()
	fmt.Fprintf(p.txt, "PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X\n",
		cpu.Pc, cpu.A, cpu.X, cpu.Y, cpu.Sp, cpu.Status)
	fmt.Fprintf(p.txt, "frame:%d cycles:%d\n\n", stats.FramesRun, stats.CyclesRun)

	lines := cpu.Disassemble(cpu.Pc, cpu.Pc+48)
	printed := 0
	for addr := cpu.Pc; printed < 6 && addr <= cpu.Pc+48; addr++ {
		if line, ok := lines[addr]; ok {
			fmt.Fprintln(p.txt, line)
			printed++
		}
	}

	p.txt.Draw(target, matrix)
}
