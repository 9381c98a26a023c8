package lod

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/scene"
)

// BillboardInfo is the mutable per-object billboard state: created when the
// object's level set is built, updated every frame by the fade controller,
// destroyed with the owning renderer.
type BillboardInfo struct {
	Sprite *scene.Sprite
	Light  *scene.PointLightProxy

	// ActivationDistance is the billboard level's threshold; nearer than
	// this the sprite fades out because a higher-detail level is shown.
	ActivationDistance float64

	// MaxFadeDistance is the range at which the point-light proxy has
	// attenuated to nothing. The sprite itself stays visible.
	MaxFadeDistance float64

	// Opacity is the smoothed current opacity, mirrored into the sprite.
	Opacity float64

	// LightIntensity is the proxy's full-strength intensity.
	LightIntensity float64
}

// BillboardTable indexes billboard state by object id so the fade
// controller can find it without walking the scene.
type BillboardTable struct {
	entries map[celestial.ID]*BillboardInfo
}

// NewBillboardTable creates an empty table.
func NewBillboardTable() *BillboardTable {
	return &BillboardTable{entries: make(map[celestial.ID]*BillboardInfo)}
}

// Register adds or replaces the billboard state for an object.
func (t *BillboardTable) Register(id celestial.ID, info *BillboardInfo) {
	if t.entries == nil {
		t.entries = make(map[celestial.ID]*BillboardInfo)
	}
	t.entries[id] = info
}

// Lookup returns the billboard state for an object, or nil.
func (t *BillboardTable) Lookup(id celestial.ID) *BillboardInfo {
	return t.entries[id]
}

// Remove drops an object's billboard state.
func (t *BillboardTable) Remove(id celestial.ID) {
	delete(t.entries, id)
}

// Clear empties the table; called on disposal so a torn-down renderer
// leaves no dangling sprite handles.
func (t *BillboardTable) Clear() {
	t.entries = make(map[celestial.ID]*BillboardInfo)
}

// Len returns the number of registered billboards.
func (t *BillboardTable) Len() int {
	return len(t.entries)
}

// Each visits every registered billboard.
func (t *BillboardTable) Each(fn func(id celestial.ID, info *BillboardInfo)) {
	for id, info := range t.entries {
		fn(id, info)
	}
}
