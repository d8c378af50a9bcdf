package renderer

import (
	"image"
	"image/color"

	"github.com/photark/go-raytracer/pkg/core"
)

// Framebuffer is a width×height grid of RGB values in [0, 1]. During a
// render each pixel is written exactly once, by the worker that owns its
// tile, so no synchronization is needed.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the color at (x, y). (0, 0) is the top-left pixel.
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Set writes the color at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// ToImage converts the framebuffer to an 8-bit RGBA image. Pixel values are
// expected to already be gamma corrected and clamped to [0, 1].
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255.999 * c.X),
				G: uint8(255.999 * c.Y),
				B: uint8(255.999 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
