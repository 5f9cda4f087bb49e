// Package display handles the graphical output for the CHIP-8/Super-CHIP
// emulator using SDL2.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Super-CHIP's high-res mode is the largest plane either mode draws to;
// the window is sized for it up front and low-res frames simply use the
// top-left corner of it.
const (
	MaxWidth  = 128
	MaxHeight = 64
)

// Display manages the SDL2 window and renderer. It is plane-agnostic:
// Render is handed whichever of the two CHIP-8 framebuffers is active
// along with its own dimensions, rather than assuming a fixed 64×32 grid.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// New creates a new display with the specified scale factor
func New(title string, scale int32) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		MaxWidth*scale,
		MaxHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Display{
		window:   window,
		renderer: renderer,
		scale:    scale,
	}, nil
}

// Close cleans up SDL resources
func (d *Display) Close() {
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
}

// Clear clears the display with a black background
func (d *Display) Clear() {
	d.renderer.SetDrawColor(0, 0, 0, 255)
	d.renderer.Clear()
}

// Render draws an active plane (either CHIP-8's 64×32 or Super-CHIP's
// 128×64) to the screen. plane is a row-major slice of w*h pixels.
func (d *Display) Render(plane []uint8, w, h int) {
	d.Clear()

	// Set color for active pixels (green phosphor style)
	d.renderer.SetDrawColor(0, 255, 0, 255)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if plane[y*w+x] != 0 {
				rect := sdl.Rect{
					X: int32(x) * d.scale,
					Y: int32(y) * d.scale,
					W: d.scale,
					H: d.scale,
				}
				d.renderer.FillRect(&rect)
			}
		}
	}

	d.renderer.Present()
}

// SetTitle sets the window title
func (d *Display) SetTitle(title string) {
	d.window.SetTitle(title)
}
