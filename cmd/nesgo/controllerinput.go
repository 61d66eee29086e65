package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/brennanwhite/nesgo/nes"
)

// keyBindings maps host keyboard keys to controller buttons, grounded on
// the teacher's controller.go key layout.
var keyBindings = map[nes.Button]pixelgl.Button{
	nes.ButtonRight:  pixelgl.KeyD,
	nes.ButtonLeft:   pixelgl.KeyA,
	nes.ButtonDown:   pixelgl.KeyS,
	nes.ButtonUp:     pixelgl.KeyW,
	nes.ButtonStart:  pixelgl.KeyEnter,
	nes.ButtonSelect: pixelgl.KeyRightShift,
	nes.ButtonB:      pixelgl.KeyK,
	nes.ButtonA:      pixelgl.KeyJ,
}

func readButtons(win *pixelgl.Window) [8]bool {
	var buttons [8]bool
	for button, key := range keyBindings {
		buttons[button] = win.Pressed(key)
	}
	return buttons
}
