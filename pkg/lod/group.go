package lod

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

// Group is the scene attachment point for a level set: a drawable that
// performs the distance-to-level selection during traversal, drawing only
// the active representation each frame.
type Group struct {
	set      LevelSet
	position mgl64.Vec3
	hidden   bool
	disposed bool
}

// NewGroup attaches a level set at the object's world position.
func NewGroup(set LevelSet, position mgl64.Vec3) *Group {
	return &Group{set: set, position: position}
}

// Levels returns the attached level set.
func (g *Group) Levels() LevelSet {
	return g.set
}

// SetLevels swaps in a rebuilt level set, disposing nothing: the caller
// owns both sets' lifecycles.
func (g *Group) SetLevels(set LevelSet) {
	g.set = set
}

// SetPosition moves the selection anchor.
func (g *Group) SetPosition(pos mgl64.Vec3) {
	g.position = pos
}

// Position returns the selection anchor.
func (g *Group) Position() mgl64.Vec3 {
	return g.position
}

// Visible implements scene.Drawable.
func (g *Group) Visible() bool {
	return !g.hidden && !g.disposed
}

// SetVisible implements scene.Drawable.
func (g *Group) SetVisible(v bool) {
	g.hidden = !v
}

// Active returns the level index that would be drawn for the given camera.
func (g *Group) Active(cam *render.Camera) int {
	return g.set.Select(cam.DistanceTo(g.position))
}

// Draw selects the active level for the frame's camera distance and draws
// its representation.
func (g *Group) Draw(fb *render.Framebuffer, frame *scene.Frame) {
	idx := g.set.Select(frame.Camera.DistanceTo(g.position))
	if idx < 0 {
		return
	}
	rep := g.set[idx].Representation
	if rep != nil && rep.Visible() {
		rep.Draw(fb, frame)
	}
}

// Lights aggregates light emissions from every level. Billboard proxies
// self-attenuate through the fade controller, so inactive levels
// contribute nothing.
func (g *Group) Lights() []celestial.LightSource {
	var lights []celestial.LightSource
	for _, level := range g.set {
		if em, ok := level.Representation.(scene.LightEmitter); ok {
			lights = append(lights, em.Lights()...)
		}
	}
	return lights
}

// Dispose releases every representation. Idempotent.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.set.Dispose()
}
