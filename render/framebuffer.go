// Package render provides the 2D pixel framebuffer the radar frame is
// drawn into. The positioning code never touches it; it only consumes
// the screen coordinates placement produces.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Common colors.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorGreen = RGB(0, 255, 128)
	ColorRed   = RGB(255, 64, 64)
)

// Framebuffer is a fixed-size RGBA pixel buffer.
type Framebuffer struct {
	Width  int
	Height int
	BG     color.RGBA

	pixels []color.RGBA
}

// NewFramebuffer creates a framebuffer cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		BG:     ColorBlack,
		pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the buffer with the background color.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.BG
	}
}

// Resize reallocates the buffer for a new size (content is dropped).
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.pixels = make([]color.RGBA, width*height)
	fb.Clear()
}

// SetPixel writes one pixel; out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = c
}

// At reads one pixel; out-of-bounds reads return the background.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fb.BG
	}
	return fb.pixels[y*fb.Width+x]
}

// ToImage converts the buffer to an image for terminal display.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the buffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
