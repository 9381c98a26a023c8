package lod

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
)

// Fade defaults. The base opacity keeps billboards slightly translucent so
// they read as distant points rather than flat discs; the smoothing factor
// gives geometric convergence without visible popping on level switches.
const (
	DefaultBaseOpacity = 0.85
	DefaultSmoothing   = 0.1
)

// FadeController updates every registered billboard's opacity once per
// frame from the camera distance, with exponential smoothing:
//
//	opacity ← opacity + (target − opacity) · k
//
// so |opacity(n) − target| ≤ (1−k)^n · |opacity(0) − target|.
type FadeController struct {
	// BaseOpacity is the visible-state target opacity.
	BaseOpacity float64
	// Smoothing is the per-frame blend factor k in (0,1].
	Smoothing float64

	table *BillboardTable
}

// NewFadeController creates a controller over the builder's billboard
// registry.
func NewFadeController(table *BillboardTable) *FadeController {
	return &FadeController{
		BaseOpacity: DefaultBaseOpacity,
		Smoothing:   DefaultSmoothing,
		table:       table,
	}
}

// Update advances every billboard's fade state for one frame.
func (f *FadeController) Update(cameraPos mgl64.Vec3) {
	f.table.Each(func(_ celestial.ID, info *BillboardInfo) {
		f.step(info, cameraPos)
	})
}

// step updates a single billboard.
func (f *FadeController) step(info *BillboardInfo, cameraPos mgl64.Vec3) {
	distance := info.Sprite.Position.Sub(cameraPos).Len()

	target := 0.0
	if distance >= info.ActivationDistance {
		target = f.BaseOpacity
	}

	info.Opacity += (target - info.Opacity) * f.Smoothing
	info.Sprite.SetOpacity(info.Opacity)

	if info.Light != nil {
		info.Light.Position = info.Sprite.Position
		info.Light.Intensity = info.LightIntensity * f.lightScale(info, distance)
	}
}

// lightScale attenuates the point-light proxy with opacity, reaching zero
// at MaxFadeDistance so very distant bodies stop contributing light while
// their sprite stays visible.
func (f *FadeController) lightScale(info *BillboardInfo, distance float64) float64 {
	scale := info.Opacity / f.BaseOpacity
	if scale < 0 {
		scale = 0
	}
	if info.MaxFadeDistance > info.ActivationDistance {
		atten := 1 - (distance-info.ActivationDistance)/(info.MaxFadeDistance-info.ActivationDistance)
		if atten < 0 {
			atten = 0
		}
		if atten > 1 {
			atten = 1
		}
		scale *= atten
	}
	return scale
}
