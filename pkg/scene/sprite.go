package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/render"
)

// Sprite is a camera-facing textured billboard, the cheapest and most
// distant representation of a body. Opacity is driven every frame by the
// billboard fade controller; the sprite itself never animates.
type Sprite struct {
	visibility

	Position  mgl64.Vec3
	Texture   *render.Texture
	WorldSize float64 // world-space diameter the sprite covers
	Opacity   float64 // 0..1, multiplied into the texture alpha

	// MinPixels keeps far sprites from vanishing below one pixel.
	MinPixels float64

	disposed bool
}

// NewSprite creates a billboard sprite.
func NewSprite(pos mgl64.Vec3, tex *render.Texture, worldSize float64) *Sprite {
	return &Sprite{
		Position:  pos,
		Texture:   tex,
		WorldSize: worldSize,
		MinPixels: 1,
	}
}

// SetPosition moves the sprite.
func (s *Sprite) SetPosition(pos mgl64.Vec3) {
	s.Position = pos
}

// SetOpacity sets the blend opacity in [0,1].
func (s *Sprite) SetOpacity(opacity float64) {
	s.Opacity = opacity
}

// Draw renders the sprite into the framebuffer, depth-tested against solid
// geometry but never writing depth itself.
func (s *Sprite) Draw(fb *render.Framebuffer, frame *Frame) {
	if s.disposed || s.Texture == nil || s.Opacity <= 0.004 {
		return
	}
	cam := frame.Camera
	cx, cy, dist, ok := cam.WorldToScreen(s.Position, fb.Width, fb.Height)
	if !ok {
		return
	}
	half := cam.ProjectedRadius(s.Position, s.WorldSize/2, fb.Height)
	if half*2 < s.MinPixels {
		half = s.MinPixels / 2
	}

	minX := int(math.Floor(cx - half))
	maxX := int(math.Ceil(cx + half))
	minY := int(math.Floor(cy - half))
	maxY := int(math.Ceil(cy + half))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			u := (float64(px) - cx + half) / (2 * half)
			v := (float64(py) - cy + half) / (2 * half)
			c := s.Texture.Sample(u, v)
			fb.BlendPixel(px, py, dist, render.FadeColor(c, s.Opacity))
		}
	}
}

// Disposed reports whether Dispose has run.
func (s *Sprite) Disposed() bool {
	return s.disposed
}

// Dispose releases the sprite's generated texture. Idempotent.
func (s *Sprite) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.Texture != nil {
		s.Texture.Dispose()
		s.Texture = nil
	}
}
