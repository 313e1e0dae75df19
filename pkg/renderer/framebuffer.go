package renderer

import "github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"

// Framebuffer holds one color per output pixel in row-major order,
// index = row*width + col. Each slot is written exactly once per render.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a framebuffer with width*height pixels
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color for pixel (i, j)
func (fb *Framebuffer) Set(i, j int, color core.Vec3) {
	fb.Pixels[j*fb.Width+i] = color
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}
