// Package renderers ties the LOD and lensing cores together: one composed
// body renderer per object, parameterized by a per-category configuration
// value instead of an inheritance chain, plus the registry, the per-frame
// update dispatcher and the disposal coordinator.
package renderers

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/lensing"
	"github.com/tanepiper/teskooano/pkg/lod"
	"github.com/tanepiper/teskooano/pkg/log"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

var logger = log.New("renderers")

// LevelFactory builds a category's custom detail levels for an object.
// A returned error is not fatal: the builder substitutes its generated
// default representation and the failure is logged as a warning.
type LevelFactory func(snap *celestial.Snapshot) ([]lod.Level, error)

// CategoryConfig is the per-category strategy value a Body is composed
// with: defaults, optional custom level construction, and capability
// flags. There is no renderer subclassing; categories differ only in
// their config.
type CategoryConfig struct {
	Category celestial.Category

	// BaseColor substitutes for snapshots without a representative color.
	BaseColor render.Color

	// Levels optionally supplies category-specific custom LOD levels.
	Levels LevelFactory

	// Build carries builder defaults (billboard distances, sprite
	// resolution, light intensity).
	Build lod.BuildOptions

	// Lensing declares that this category drives a lensing effect and
	// needs the graphics context, scene and camera during update. A
	// capability flag, matched explicitly — never a type check.
	Lensing bool

	// LensingConfig tunes the effect for lensing-enabled categories.
	LensingConfig lensing.Config
}

// positionable is satisfied by representations that can follow their
// object's world position.
type positionable interface {
	SetPosition(pos mgl64.Vec3)
}

// Body renders one celestial object: it owns the object's level set, its
// billboard state (via the shared builder) and, for massive objects, the
// lensing effect.
type Body struct {
	cfg      CategoryConfig
	snapshot celestial.Snapshot

	builder *lod.Builder
	levels  lod.LevelSet
	group   *lod.Group
	effect  *lensing.Effect

	disposed bool
}

// NewBody builds a renderer for the given snapshot. Construction never
// fails: level factory errors degrade to generated defaults.
func NewBody(builder *lod.Builder, snap *celestial.Snapshot, cfg CategoryConfig) *Body {
	b := &Body{
		cfg:     cfg,
		builder: builder,
	}
	b.snapshot = *snap
	if b.snapshot.Color.A == 0 {
		b.snapshot.Color = cfg.BaseColor
	}
	b.levels = b.buildLevels()
	b.group = lod.NewGroup(b.levels, b.snapshot.Position)
	return b
}

// buildLevels runs the category's level factory (if any) and composes the
// level set through the shared builder.
func (b *Body) buildLevels() lod.LevelSet {
	opts := b.cfg.Build

	if b.cfg.Levels != nil {
		custom, err := b.cfg.Levels(&b.snapshot)
		if err != nil {
			logger.Warningf("object %q: %s representation failed, using fallback: %v", b.snapshot.ID, b.cfg.Category, err)
		} else {
			opts.CustomLevels = custom
		}
	}

	return b.builder.BuildLevels(&b.snapshot, opts)
}

// ObjectID returns the rendered object's id.
func (b *Body) ObjectID() celestial.ID {
	return b.snapshot.ID
}

// Category returns the renderer's category tag.
func (b *Body) Category() celestial.Category {
	return b.cfg.Category
}

// Group returns the scene attachment point carrying the level set.
func (b *Body) Group() *lod.Group {
	return b.group
}

// Levels returns the current level set.
func (b *Body) Levels() lod.LevelSet {
	return b.levels
}

// Snapshot returns the last applied object snapshot.
func (b *Body) Snapshot() celestial.Snapshot {
	return b.snapshot
}

// NeedsLensingContext reports the capability flag: this renderer wants the
// graphics context, scene and camera during update to drive its lensing
// effect.
func (b *Body) NeedsLensingContext() bool {
	return b.cfg.Lensing && b.snapshot.Lensing
}

// Effect returns the lensing effect, nil until EnableLensing.
func (b *Body) Effect() *lensing.Effect {
	return b.effect
}

// EnableLensing lazily creates the lensing effect and attaches its
// distortion mesh into the highest-detail level's sub-tree. The effect's
// lifecycle is independent of level switching. Calling it again returns
// the existing effect.
func (b *Body) EnableLensing() *lensing.Effect {
	if b.disposed {
		return nil
	}
	if b.effect != nil {
		return b.effect
	}
	b.effect = lensing.NewEffect(&b.snapshot, b.cfg.LensingConfig)

	if len(b.levels) > 0 {
		host := b.levels[0].Representation
		if g, ok := host.(*scene.Group); ok {
			g.Add(b.effect.Mesh())
		} else {
			b.levels[0].Representation = scene.NewGroup(host, b.effect.Mesh())
			b.group.SetLevels(b.levels)
		}
	}
	return b.effect
}

// Update is the per-frame renderer update. Time, lights and camera arrive
// as explicit parameters; nothing is read from ambient state.
func (b *Body) Update(time float64, lights []celestial.LightSource, cam *render.Camera) {
	if b.disposed {
		return
	}
	if b.effect != nil {
		b.effect.SetHostPosition(b.snapshot.Position)
	}
}

// UpdateLensing runs the capture/composite protocol. Called by the
// dispatcher only when context, scene and camera are all available.
func (b *Body) UpdateLensing(ctx *render.Context, scn *scene.Scene, frame *scene.Frame) {
	if b.disposed || b.effect == nil {
		return
	}
	b.effect.Update(ctx, scn, frame)
}

// ApplyDiff applies a property change detected by the orchestrator. Moves
// reposition the existing representations; material changes (radius,
// category, color) rebuild the level set — the old set is disposed, never
// mutated in place.
func (b *Body) ApplyDiff(next *celestial.Snapshot) {
	if b.disposed || next == nil {
		return
	}
	diff := celestial.Compare(&b.snapshot, next)
	if !diff.Any() {
		return
	}

	prevColor := b.snapshot.Color
	b.snapshot = *next
	if b.snapshot.Color.A == 0 {
		b.snapshot.Color = prevColor
	}

	if diff.Material() || diff.Recolor {
		hadEffect := b.effect != nil
		b.levels.Dispose()
		b.builder.Release(b.snapshot.ID)
		b.levels = b.buildLevels()
		b.group.SetLevels(b.levels)
		b.group.SetPosition(b.snapshot.Position)
		if hadEffect {
			b.attachEffectMesh()
		}
		return
	}

	if diff.Moved {
		b.group.SetPosition(b.snapshot.Position)
		for _, level := range b.levels {
			b.reposition(level.Representation)
		}
		if info := b.builder.Billboards().Lookup(b.snapshot.ID); info != nil {
			info.Sprite.SetPosition(b.snapshot.Position)
		}
		if b.effect != nil {
			b.effect.SetHostPosition(b.snapshot.Position)
		}
	}
}

// reposition moves a representation (and a group's children) to the
// current snapshot position.
func (b *Body) reposition(d scene.Drawable) {
	switch v := d.(type) {
	case positionable:
		v.SetPosition(b.snapshot.Position)
	case *scene.Group:
		for _, child := range v.Children() {
			b.reposition(child)
		}
	}
}

// attachEffectMesh re-inserts the effect mesh into the current level-0
// sub-tree after a rebuild.
func (b *Body) attachEffectMesh() {
	if b.effect == nil || len(b.levels) == 0 {
		return
	}
	host := b.levels[0].Representation
	if g, ok := host.(*scene.Group); ok {
		g.Add(b.effect.Mesh())
		return
	}
	b.levels[0].Representation = scene.NewGroup(host, b.effect.Mesh())
	b.group.SetLevels(b.levels)
}

// Disposed reports whether Dispose has run.
func (b *Body) Disposed() bool {
	return b.disposed
}

// Dispose releases every resource the renderer created: level
// representations, billboard state, and the lensing effect. Idempotent.
func (b *Body) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true

	b.levels.Dispose()
	b.builder.Release(b.snapshot.ID)
	if b.effect != nil {
		b.effect.Dispose()
	}
	b.group.Dispose()
}
