package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
)

// PointLightProxy stands in for a distant body's illumination so scenes
// keep their lighting when the body itself has faded to a billboard. It
// draws nothing; it only contributes to the frame's light list.
type PointLightProxy struct {
	visibility

	ID        celestial.ID
	Position  mgl64.Vec3
	Color     render.Color
	Intensity float64
}

// NewPointLightProxy creates a light proxy for the given object.
func NewPointLightProxy(id celestial.ID, pos mgl64.Vec3, c render.Color, intensity float64) *PointLightProxy {
	return &PointLightProxy{
		ID:        id,
		Position:  pos,
		Color:     c,
		Intensity: intensity,
	}
}

// SetPosition moves the proxy's light.
func (p *PointLightProxy) SetPosition(pos mgl64.Vec3) {
	p.Position = pos
}

// Draw is a no-op; the proxy carries no geometry.
func (p *PointLightProxy) Draw(fb *render.Framebuffer, frame *Frame) {}

// Lights implements LightEmitter.
func (p *PointLightProxy) Lights() []celestial.LightSource {
	if p.Intensity <= 0 {
		return nil
	}
	return []celestial.LightSource{{
		ID:        p.ID,
		Position:  p.Position,
		Color:     p.Color,
		Intensity: p.Intensity,
	}}
}
