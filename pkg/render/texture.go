package render

import (
	"math"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapRepeat WrapMode = iota // Tile the texture
	WrapClamp                  // Clamp to edge
)

// FilterMode determines how texture sampling is performed.
type FilterMode int

const (
	FilterNearest  FilterMode = iota // Nearest-neighbor (pixelated)
	FilterBilinear                   // Bilinear interpolation (smooth)
)

// Texture holds a 2D image for sampling. Generated textures (billboard
// sprites, lensing backdrops) own their pixel storage; Dispose releases it.
type Texture struct {
	Width      int
	Height     int
	Pixels     []Color
	WrapU      WrapMode
	WrapV      WrapMode
	FilterMode FilterMode

	disposed bool
}

// NewTexture creates an empty texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:      width,
		Height:     height,
		Pixels:     make([]Color, width*height),
		WrapU:      WrapClamp,
		WrapV:      WrapClamp,
		FilterMode: FilterBilinear,
	}
}

// NewSpriteTexture generates the soft circular billboard sprite: a radial
// falloff disc tinted by the given color, with a brighter core. This is the
// cheapest, most distant representation of every body.
func NewSpriteTexture(size int, tint Color) *Texture {
	if size < 2 {
		size = 2
	}
	tex := NewTexture(size, size)
	center := float64(size-1) / 2
	for y := range size {
		for x := range size {
			dx := (float64(x) - center) / center
			dy := (float64(y) - center) / center
			r := math.Sqrt(dx*dx + dy*dy)
			if r > 1 {
				continue
			}
			// Soft edge with a hot core near the center.
			falloff := 1 - r*r
			core := math.Max(0, 1-r*4)
			tex.SetPixel(x, y, Color{
				R: satAdd(scale8(tint.R, falloff), scale8(255, core)),
				G: satAdd(scale8(tint.G, falloff), scale8(255, core)),
				B: satAdd(scale8(tint.B, falloff), scale8(255, core)),
				A: uint8(math.Min(255, falloff*255)),
			})
		}
	}
	return tex
}

// CaptureFramebuffer snapshots a framebuffer into a reusable texture. The
// texture is resized when the source dimensions changed; otherwise its
// storage is reused frame to frame. A nil texture allocates a fresh one.
func CaptureFramebuffer(tex *Texture, fb *Framebuffer) *Texture {
	if tex == nil || tex.Width != fb.Width || tex.Height != fb.Height {
		tex = NewTexture(fb.Width, fb.Height)
	}
	copy(tex.Pixels, fb.Pixels)
	return tex
}

// Dispose releases the pixel storage. Safe to call more than once.
func (t *Texture) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.Pixels = nil
	t.Width = 0
	t.Height = 0
}

// Disposed reports whether Dispose has run.
func (t *Texture) Disposed() bool {
	return t.disposed
}

// SetPixel sets a pixel in the texture.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// GetPixel returns the pixel at (x, y) with bounds checking.
func (t *Texture) GetPixel(x, y int) Color {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return Color{}
	}
	return t.Pixels[y*t.Width+x]
}

// Sample samples the texture at UV coordinates (0-1 range).
func (t *Texture) Sample(u, v float64) Color {
	if t.disposed || t.Width == 0 || t.Height == 0 {
		return Color{}
	}
	u = t.wrapCoord(u, t.WrapU)
	v = t.wrapCoord(v, t.WrapV)

	switch t.FilterMode {
	case FilterBilinear:
		return t.sampleBilinear(u, v)
	default:
		return t.sampleNearest(u, v)
	}
}

func (t *Texture) wrapCoord(coord float64, mode WrapMode) float64 {
	switch mode {
	case WrapRepeat:
		coord = coord - math.Floor(coord)
	case WrapClamp:
		coord = math.Max(0, math.Min(1, coord))
	}
	return coord
}

func (t *Texture) sampleNearest(u, v float64) Color {
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.GetPixel(x, y)
}

func (t *Texture) sampleBilinear(u, v float64) Color {
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := x0 + 1
	y1 := y0 + 1

	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x0 = t.wrapPixelCoord(x0, t.Width, t.WrapU)
	x1 = t.wrapPixelCoord(x1, t.Width, t.WrapU)
	y0 = t.wrapPixelCoord(y0, t.Height, t.WrapV)
	y1 = t.wrapPixelCoord(y1, t.Height, t.WrapV)

	c00 := t.GetPixel(x0, y0)
	c10 := t.GetPixel(x1, y0)
	c01 := t.GetPixel(x0, y1)
	c11 := t.GetPixel(x1, y1)

	top := LerpColor(c00, c10, tx)
	bot := LerpColor(c01, c11, tx)
	return LerpColor(top, bot, ty)
}

func (t *Texture) wrapPixelCoord(x, size int, mode WrapMode) int {
	switch mode {
	case WrapRepeat:
		x = x % size
		if x < 0 {
			x += size
		}
	case WrapClamp:
		if x < 0 {
			x = 0
		} else if x >= size {
			x = size - 1
		}
	}
	return x
}

// LerpColor linearly interpolates between two colors.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// MultiplyColor multiplies a color by a scalar (for lighting).
func MultiplyColor(c Color, intensity float64) Color {
	return Color{
		R: uint8(math.Min(255, float64(c.R)*intensity)),
		G: uint8(math.Min(255, float64(c.G)*intensity)),
		B: uint8(math.Min(255, float64(c.B)*intensity)),
		A: c.A,
	}
}

// ModulateColor modulates one color by another.
func ModulateColor(a, b Color) Color {
	return Color{
		R: uint8((int(a.R) * int(b.R)) / 255),
		G: uint8((int(a.G) * int(b.G)) / 255),
		B: uint8((int(a.B) * int(b.B)) / 255),
		A: uint8((int(a.A) * int(b.A)) / 255),
	}
}

// FadeColor scales only the alpha channel by opacity in [0,1].
func FadeColor(c Color, opacity float64) Color {
	if opacity <= 0 {
		return Color{}
	}
	if opacity >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}

func scale8(v uint8, f float64) uint8 {
	return uint8(math.Min(255, float64(v)*f))
}

func satAdd(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
