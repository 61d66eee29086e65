package main

import (
	"image"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	nesResW float64 = 256
	nesResH float64 = 224

	screenPosX float64 = 600
	screenPosY float64 = 400
)

// display wraps a PixelGL window and the RGBA image nes.Render fills each
// frame, grounded on the teacher's Display/DrawPixel/UpdateScreen split.
type display struct {
	rgba   *image.RGBA
	window *pixelgl.Window
	matrix pixel.Matrix
}

func newDisplay(scale float64) *display {
	rect := image.Rect(0, 0, int(nesResW), int(nesResH))
	rgba := image.NewRGBA(rect)

	config := pixelgl.WindowConfig{
		Title:    "nesgo",
		Bounds:   pixel.R(0, 0, nesResW*scale, nesResH*scale),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("nesgo: unable to create window: ", err)
	}

	pic := pixel.PictureDataFromImage(rgba)
	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	matrix = matrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	return &display{rgba: rgba, window: window, matrix: matrix}
}

// updateFrame copies a nes.Render buffer (256x256x4, only the top 224 rows
// live) into the display's backing image.
func (d *display) updateFrame(buf []byte) {
	copy(d.rgba.Pix, buf[:len(d.rgba.Pix)])
}

// present draws the current frame. The caller is responsible for calling
// window.Update() afterward, once any debug overlay has also been drawn.
func (d *display) present() {
	d.window.Clear(colornames.Black)

	pic := pixel.PictureDataFromImage(d.rgba)
	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(d.window, d.matrix)
}
