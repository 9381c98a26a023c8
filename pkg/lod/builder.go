package lod

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/log"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

var logger = log.New("lod")

// Defaults used by BuildLevels when options leave them zero.
const (
	// DefaultPlaceholderRadius sizes the fallback representation for
	// objects with missing or non-finite radius data.
	DefaultPlaceholderRadius = 1.0

	// DefaultSpriteResolution is the generated billboard texture size.
	DefaultSpriteResolution = 64

	// DefaultBillboardFactor derives the billboard activation distance
	// from the physical radius when no distance is supplied.
	DefaultBillboardFactor = 60.0

	// Billboard world size is radius * spriteSizeFactor, clamped.
	spriteSizeFactor = 3.0
	spriteSizeMin    = 0.5
	spriteSizeMax    = 500.0
)

// BuildOptions tunes a single BuildLevels call. The zero value is valid.
type BuildOptions struct {
	// CustomLevels are caller-supplied representations of the same
	// object at decreasing cost, strictly increasing in distance. When
	// none covers distance 0, a default impostor level is prepended.
	CustomLevels []Level

	// BillboardDistance is the terminal billboard's activation distance.
	// Zero derives it from the radius; it must exceed every custom
	// level's distance, otherwise the set is re-sorted with a warning.
	BillboardDistance float64

	// MaxFadeDistance bounds the billboard's point-light contribution.
	// Zero derives it as 4x the billboard distance.
	MaxFadeDistance float64

	// SpriteResolution is the generated sprite texture size in pixels.
	SpriteResolution int

	// LightIntensity is the point-light proxy's full intensity. Zero
	// disables the proxy for non-luminous bodies; luminous categories
	// (stars) default to 0.6.
	LightIntensity float64
}

// Builder constructs level sets from object snapshots and tracks the
// billboard state it creates so the fade controller can drive it.
type Builder struct {
	billboards *BillboardTable
}

// NewBuilder creates a builder with an empty billboard table.
func NewBuilder() *Builder {
	return &Builder{billboards: NewBillboardTable()}
}

// Billboards exposes the registry the builder fills, shared with the fade
// controller.
func (b *Builder) Billboards() *BillboardTable {
	return b.billboards
}

// BuildLevels composes an object's level set. It never fails: invalid
// snapshot data degrades to a single placeholder level at distance 0 and a
// warning. Otherwise the set contains the custom levels (or a generated
// default impostor) plus exactly one terminal billboard level, ordered
// ascending by activation distance.
func (b *Builder) BuildLevels(snap *celestial.Snapshot, opts BuildOptions) LevelSet {
	if err := snap.Validate(); err != nil {
		logger.Warningf("falling back to placeholder representation: %v", err)
		return LevelSet{placeholderLevel(snap)}
	}

	set := make(LevelSet, 0, len(opts.CustomLevels)+2)

	coversZero := false
	prev := -1.0
	for _, level := range opts.CustomLevels {
		if level.Representation == nil || !celestial.Finite(level.ActivationDistance) || level.ActivationDistance < 0 {
			logger.Warningf("object %q: dropping invalid custom level at %v", snap.ID, level.ActivationDistance)
			continue
		}
		if level.ActivationDistance <= prev {
			logger.Warningf("object %q: custom level distances not strictly increasing (%v after %v)", snap.ID, level.ActivationDistance, prev)
		}
		prev = level.ActivationDistance
		if level.ActivationDistance == 0 {
			coversZero = true
		}
		set = append(set, level)
	}

	if !coversZero {
		set = append(LevelSet{defaultLevel(snap)}, set...)
	}

	billboardDist := opts.BillboardDistance
	if billboardDist <= 0 || !celestial.Finite(billboardDist) {
		billboardDist = snap.Radius * DefaultBillboardFactor
	}
	maxFade := opts.MaxFadeDistance
	if maxFade <= billboardDist || !celestial.Finite(maxFade) {
		maxFade = billboardDist * 4
	}

	billboard, info := b.buildBillboard(snap, billboardDist, maxFade, opts)
	set = append(set, Level{Representation: billboard, ActivationDistance: billboardDist})

	if !set.IsSorted() {
		logger.Warningf("object %q: level distances collide with billboard distance %v; re-sorting", snap.ID, billboardDist)
		set.sortStable()
	}

	b.billboards.Register(snap.ID, info)
	return set
}

// Release drops the billboard state created for an object and disposes its
// sprite. Called when the owning renderer is disposed.
func (b *Builder) Release(id celestial.ID) {
	if info := b.billboards.Lookup(id); info != nil {
		info.Sprite.Dispose()
		b.billboards.Remove(id)
	}
}

// Dispose clears the billboard registry, disposing every sprite.
func (b *Builder) Dispose() {
	b.billboards.Each(func(_ celestial.ID, info *BillboardInfo) {
		info.Sprite.Dispose()
	})
	b.billboards.Clear()
}

// buildBillboard generates the terminal billboard level: a tinted soft
// sprite plus a point-light proxy so distant bodies keep illuminating.
func (b *Builder) buildBillboard(snap *celestial.Snapshot, activation, maxFade float64, opts BuildOptions) (scene.Drawable, *BillboardInfo) {
	resolution := opts.SpriteResolution
	if resolution <= 0 {
		resolution = DefaultSpriteResolution
	}

	tint := snap.Color
	if tint.A == 0 {
		tint = render.ColorWhite
	}

	worldSize := snap.Radius * spriteSizeFactor
	if worldSize < spriteSizeMin {
		worldSize = spriteSizeMin
	}
	if worldSize > spriteSizeMax {
		worldSize = spriteSizeMax
	}

	sprite := scene.NewSprite(snap.Position, render.NewSpriteTexture(resolution, tint), worldSize)
	sprite.SetOpacity(0)

	intensity := opts.LightIntensity
	if intensity == 0 && luminous(snap.Category) {
		intensity = 0.6
	}
	light := scene.NewPointLightProxy(snap.ID, snap.Position, tint, intensity)

	info := &BillboardInfo{
		Sprite:             sprite,
		Light:              light,
		ActivationDistance: activation,
		MaxFadeDistance:    maxFade,
		LightIntensity:     intensity,
	}
	return scene.NewGroup(sprite, light), info
}

// placeholderLevel is the degraded representation for invalid data: a
// default-radius neutral sphere at distance 0.
func placeholderLevel(snap *celestial.Snapshot) Level {
	pos := snap.Position
	for i := range 3 {
		if !celestial.Finite(pos[i]) {
			pos[i] = 0
		}
	}
	imp := scene.NewSphereImpostor(pos, DefaultPlaceholderRadius, render.RGB(128, 128, 128))
	return Level{Representation: imp, ActivationDistance: 0}
}

// defaultLevel is the generated full-detail representation used when the
// caller supplies no custom level at distance 0.
func defaultLevel(snap *celestial.Snapshot) Level {
	c := snap.Color
	if c.A == 0 {
		c = render.ColorWhite
	}
	imp := scene.NewSphereImpostor(snap.Position, snap.Radius, c)
	imp.Emissive = luminous(snap.Category)
	return Level{Representation: imp, ActivationDistance: 0}
}

func luminous(cat celestial.Category) bool {
	switch cat {
	case celestial.CategoryStar, celestial.CategoryNeutronStar:
		return true
	}
	return false
}
