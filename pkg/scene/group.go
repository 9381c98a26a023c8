package scene

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
)

// Group composes drawables into one unit: a body and its effect layers, or
// a billboard sprite paired with its light proxy. Hiding the group hides
// every child without touching their individual visibility.
type Group struct {
	visibility

	children []Drawable
}

// NewGroup creates a group of the given drawables.
func NewGroup(children ...Drawable) *Group {
	return &Group{children: children}
}

// Add appends a child drawable.
func (g *Group) Add(d Drawable) {
	if d != nil {
		g.children = append(g.children, d)
	}
}

// Children returns the child drawables.
func (g *Group) Children() []Drawable {
	return g.children
}

// Draw renders the visible children.
func (g *Group) Draw(fb *render.Framebuffer, frame *Frame) {
	for _, child := range g.children {
		if child.Visible() {
			child.Draw(fb, frame)
		}
	}
}

// Lights aggregates the children's light emissions.
func (g *Group) Lights() []celestial.LightSource {
	var lights []celestial.LightSource
	for _, child := range g.children {
		if !child.Visible() {
			continue
		}
		if em, ok := child.(LightEmitter); ok {
			lights = append(lights, em.Lights()...)
		}
	}
	return lights
}

// Dispose releases every disposable child. Idempotent because children's
// Dispose implementations are.
func (g *Group) Dispose() {
	for _, child := range g.children {
		if d, ok := child.(Disposable); ok {
			d.Dispose()
		}
	}
}
