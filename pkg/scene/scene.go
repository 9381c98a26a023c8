// Package scene holds the drawable graph the renderers attach their LOD
// representations to: sphere impostors, billboard sprites, wire meshes and
// point-light proxies, plus the scene container the lensing capture pass
// re-renders into offscreen targets.
package scene

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
)

// Frame carries the per-frame context every draw call receives explicitly:
// elapsed time, the camera, and the light sources for this frame. Nothing
// is read from ambient state mid-draw.
type Frame struct {
	Time   float64 // seconds since start
	Camera *render.Camera
	Lights []celestial.LightSource
}

// Drawable is anything the scene can render into a framebuffer.
type Drawable interface {
	Draw(fb *render.Framebuffer, frame *Frame)
	Visible() bool
	SetVisible(v bool)
}

// LightEmitter is implemented by drawables that contribute illumination,
// such as the billboard level's point-light proxy.
type LightEmitter interface {
	Lights() []celestial.LightSource
}

// Disposable is implemented by drawables owning releasable resources.
type Disposable interface {
	Dispose()
}

// Scene is a flat container of drawables. The orchestrator owns membership;
// the scene only iterates.
type Scene struct {
	drawables []Drawable
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a drawable to the scene.
func (s *Scene) Add(d Drawable) {
	if d == nil {
		return
	}
	s.drawables = append(s.drawables, d)
}

// Remove detaches a drawable from the scene.
func (s *Scene) Remove(d Drawable) {
	for i, existing := range s.drawables {
		if existing == d {
			s.drawables = append(s.drawables[:i], s.drawables[i+1:]...)
			return
		}
	}
}

// Len returns the number of attached drawables.
func (s *Scene) Len() int {
	return len(s.drawables)
}

// Render draws every visible drawable into the context's current output
// target. The target may be the screen or, during a lensing capture, an
// offscreen framebuffer.
func (s *Scene) Render(ctx *render.Context, frame *Frame) {
	target := ctx.Target()
	for _, d := range s.drawables {
		if !d.Visible() {
			continue
		}
		d.Draw(target, frame)
	}
}

// Lights collects the light sources emitted by visible drawables.
func (s *Scene) Lights() []celestial.LightSource {
	var lights []celestial.LightSource
	for _, d := range s.drawables {
		if !d.Visible() {
			continue
		}
		if em, ok := d.(LightEmitter); ok {
			lights = append(lights, em.Lights()...)
		}
	}
	return lights
}

// visibility is the common show/hide state embedded by drawables.
type visibility struct {
	hidden bool
}

// Visible reports whether the drawable should be rendered.
func (v *visibility) Visible() bool {
	return !v.hidden
}

// SetVisible shows or hides the drawable.
func (v *visibility) SetVisible(visible bool) {
	v.hidden = !visible
}
