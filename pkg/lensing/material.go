// Package lensing implements the gravitational-lensing effect: a per-frame
// capture/composite protocol that renders the scene into an offscreen
// target, then draws a distortion mesh that displaces samples of that
// captured backdrop around a massive body.
package lensing

import (
	"math"

	"github.com/tanepiper/teskooano/pkg/render"
)

// Material defaults.
const (
	// DefaultStrength is the peak UV displacement of backdrop samples.
	DefaultStrength = 0.06

	// DefaultRingRadius is the fractional radius where the bright ring
	// term peaks, approximating an Einstein ring.
	DefaultRingRadius = 0.42

	// DefaultAlphaCap bounds the composited alpha so the effect always
	// stays translucent.
	DefaultAlphaCap = 0.7
)

// DistortionMaterial computes the per-pixel lensing composite: a radial
// falloff drives sample displacement into the captured backdrop, a ring
// term adds the bright halo, and a slow time perturbation keeps the effect
// alive. Inputs (backdrop, time, resolution) are fed by the effect manager
// every frame.
type Material struct {
	Strength   float64
	RingRadius float64
	AlphaCap   float64

	backdrop   *render.Texture
	time       float64
	resolution render.Size

	disposed bool
}

// NewMaterial creates a distortion material with default parameters.
func NewMaterial() *Material {
	return &Material{
		Strength:   DefaultStrength,
		RingRadius: DefaultRingRadius,
		AlphaCap:   DefaultAlphaCap,
	}
}

// SetBackdrop feeds the captured scene texture for this frame.
func (m *Material) SetBackdrop(tex *render.Texture) {
	m.backdrop = tex
}

// Backdrop returns the current backdrop texture.
func (m *Material) Backdrop() *render.Texture {
	return m.backdrop
}

// SetTime feeds the elapsed time driving the slow perturbation.
func (m *Material) SetTime(t float64) {
	m.time = t
}

// SetResolution records the viewport resolution the offsets are computed
// against. It must change together with the capture target's size or the
// sampled offsets go stale and misalign.
func (m *Material) SetResolution(size render.Size) {
	m.resolution = size
}

// Resolution returns the material's current resolution input.
func (m *Material) Resolution() render.Size {
	return m.resolution
}

// Shade computes the composited color for a pixel at local disc
// coordinates (dx, dy) in [-1,1] and normalized screen coordinates (u, v).
// The second return is false when the pixel is outside the effect.
func (m *Material) Shade(dx, dy, u, v float64) (render.Color, bool) {
	if m.disposed || m.backdrop == nil {
		return render.Color{}, false
	}
	r := math.Sqrt(dx*dx + dy*dy)
	if r > 1 {
		return render.Color{}, false
	}

	// Radial falloff: strongest bending near the center, none at the rim.
	falloff := (1 - r) * (1 - r)

	// Ring term peaking near the Einstein radius.
	ringDelta := r - m.RingRadius
	ring := math.Exp(-ringDelta * ringDelta / 0.008)

	// Slow angular perturbation for subtle animation.
	angle := math.Atan2(dy, dx)
	perturb := 0.15 * math.Sin(m.time*0.6+angle*3)

	// Displace the sample radially inward plus the perturbation.
	offset := m.Strength * (falloff + 0.5*ring + perturb*falloff)
	var ou, ov float64
	if r > 0 {
		ou = -dx / r * offset
		ov = -dy / r * offset
	}

	sample := m.backdrop.Sample(u+ou, v+ov)

	// Brighten toward the ring.
	sample = render.LerpColor(sample, render.ColorWhite, ring*0.45)

	edgeFade := clamp01((1 - r) * 4)
	alpha := falloff*0.6 + ring*0.4
	alpha = clamp01(alpha) * edgeFade * m.AlphaCap

	sample.A = uint8(alpha * 255)
	return sample, true
}

// Dispose drops the backdrop reference. Idempotent.
func (m *Material) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.backdrop = nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
