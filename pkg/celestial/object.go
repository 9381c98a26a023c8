// Package celestial defines the renderable object model shared by the
// LOD, lensing and renderer packages: per-object snapshots pulled from the
// simulation state, plus light sources and categories.
package celestial

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ID uniquely identifies a celestial object across the scene.
type ID string

// Category tags an object with its broad renderable class. Renderers are
// grouped and dispatched by category, never by concrete type.
type Category string

const (
	CategoryStar          Category = "star"
	CategoryPlanet        Category = "planet"
	CategoryMoon          Category = "moon"
	CategoryRing          Category = "ring"
	CategoryParticleField Category = "particles"
	CategoryBlackHole     Category = "blackhole"
	CategoryNeutronStar   Category = "neutronstar"
)

// Snapshot is an immutable view of one object's renderable state for the
// current frame. It is rebuilt by the orchestrator from the live simulation
// state; nothing in the render core holds a subscription to that state.
type Snapshot struct {
	ID       ID
	Name     string
	Category Category

	Position mgl64.Vec3
	Radius   float64 // physical radius in world units
	Mass     float64

	// Color is the representative tint used for billboards and impostors.
	Color color.RGBA

	// ParentID links moons and rings to their host body. Empty for roots.
	ParentID ID

	// Temperature drives star shading, in kelvin. Zero for cold bodies.
	Temperature float64

	// Lensing marks objects massive enough to warrant the gravitational
	// lensing effect.
	Lensing bool
}

// LightSource describes one illumination contributor (a star or a distant
// billboard's point-light proxy).
type LightSource struct {
	ID        ID
	Position  mgl64.Vec3
	Color     color.RGBA
	Intensity float64
}

// ErrMissingData reports that a snapshot is missing the numeric fields a
// representation needs. Consumers degrade to a placeholder instead of
// failing the frame.
var ErrMissingData = fmt.Errorf("celestial: missing or non-finite object data")

// Finite reports whether v is a usable finite number.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the fields every representation depends on. A zero or
// negative radius is treated as missing: the object exists but cannot be
// sized.
func (s *Snapshot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("object with no id: %w", ErrMissingData)
	}
	if !Finite(s.Radius) || s.Radius <= 0 {
		return fmt.Errorf("object %q radius %v: %w", s.ID, s.Radius, ErrMissingData)
	}
	for i := range 3 {
		if !Finite(s.Position[i]) {
			return fmt.Errorf("object %q position %v: %w", s.ID, s.Position, ErrMissingData)
		}
	}
	return nil
}

// Diff reports which materially-defining properties changed between two
// snapshots of the same object. A material change invalidates the object's
// level set; a positional change only moves existing representations.
type Diff struct {
	Moved   bool
	Resized bool
	Recolor bool
	Reclass bool
}

// Material reports whether the diff requires the level set to be rebuilt.
func (d Diff) Material() bool {
	return d.Resized || d.Reclass
}

// Any reports whether anything changed at all.
func (d Diff) Any() bool {
	return d.Moved || d.Resized || d.Recolor || d.Reclass
}

// Compare computes the property diff from prev to next.
func Compare(prev, next *Snapshot) Diff {
	var d Diff
	if prev == nil || next == nil {
		return Diff{Moved: true, Resized: true, Recolor: true, Reclass: true}
	}
	if prev.Position != next.Position {
		d.Moved = true
	}
	if prev.Radius != next.Radius {
		d.Resized = true
	}
	if prev.Color != next.Color || prev.Temperature != next.Temperature {
		d.Recolor = true
	}
	if prev.Category != next.Category || prev.Lensing != next.Lensing {
		d.Reclass = true
	}
	return d
}
