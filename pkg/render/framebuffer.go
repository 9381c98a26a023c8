// Package render provides the CPU rendering surface for the engine: color
// framebuffers that double as offscreen render targets, generated textures,
// the camera, and the graphics context whose output target the lensing pass
// redirects.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D pixel surface with an attached depth buffer. It is
// both the on-screen surface and the offscreen render target used by the
// lensing capture pass. Height is 2x the terminal rows when presented with
// half-block characters.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
	Depth  []float64    // Row-major depth, smaller is closer
}

// Size is a viewport or target dimension pair.
type Size struct {
	Width  int
	Height int
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.ClearDepth()
	return fb
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() Size {
	return Size{Width: fb.Width, Height: fb.Height}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// ClearDepth resets the depth buffer to the far plane.
func (fb *Framebuffer) ClearDepth() {
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

// SetPixel sets a pixel at (x, y). Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), +Inf if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// SetPixelDepth writes a pixel only if depth passes the depth test, and
// records the new depth.
func (fb *Framebuffer) SetPixelDepth(x, y int, depth float64, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth > fb.Depth[i] {
		return
	}
	fb.Depth[i] = depth
	fb.Pixels[i] = c
}

// BlendPixel alpha-blends c over the existing pixel when the depth test
// passes. Depth is tested but not written, so translucent sprites and the
// lensing mesh never occlude geometry drawn after them.
func (fb *Framebuffer) BlendPixel(x, y int, depth float64, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height || c.A == 0 {
		return
	}
	i := y*fb.Width + x
	if depth > fb.Depth[i] {
		return
	}
	if c.A == 255 {
		fb.Pixels[i] = c
		return
	}
	dst := fb.Pixels[i]
	a := int(c.A)
	inv := 255 - a
	fb.Pixels[i] = color.RGBA{
		R: uint8((int(c.R)*a + int(dst.R)*inv) / 255),
		G: uint8((int(c.G)*a + int(dst.G)*inv) / 255),
		B: uint8((int(c.B)*a + int(dst.B)*inv) / 255),
		A: 255,
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, depth-tested at a constant depth.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, depth float64, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixelDepth(x0, y0, depth, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
