package main

import (
	"fmt"

	"github.com/faiface/pixel"

	"github.com/brennanwhite/nesgo/nes"
)

// emulatorApp drives the PixelGL main-thread loop: poll input, run one
// emulated frame, present it. pixelgl.Run requires this shape (a function
// with no arguments run on the GL thread), matching the teacher's
// nesEmulator.Run entry point.
type emulatorApp struct {
	system *nes.System
	debug  bool
	scale  float64
}

func (a *emulatorApp) run() {
	d := newDisplay(a.scale)

	fmt.Printf("nesgo: running, mapper %d, %s mirroring\n",
		a.system.Bus.Cart.MapperID, mirroringName(a.system.Bus.Cart.Mirroring))

	var panel *debugPanel
	if a.debug {
		panel = newDebugPanel(pixel.V(10, d.window.Bounds().H()-16))
	}

	for !d.window.Closed() {
		a.system.LatchButtons(readButtons(d.window))

		frame := a.system.StepFrame()
		d.updateFrame(nes.Render(frame))
		d.present()

		if a.debug {
			stats := a.system.Stats()
			d.window.SetTitle(fmt.Sprintf("nesgo - frame %d - %d cycles", stats.FramesRun, stats.CyclesRun))
			panel.draw(d.window, a.system, pixel.IM)
		}

		d.window.Update()
	}
}

func mirroringName(m nes.Mirroring) string {
	if m == nes.MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}
