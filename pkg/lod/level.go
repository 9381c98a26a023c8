// Package lod implements the level-of-detail core: ordered level sets per
// object, the builder that composes them (with a placeholder fallback and a
// terminal billboard level), the billboard fade controller, and the
// distance-based selection contract used at scene attachment.
package lod

import (
	"sort"

	"github.com/tanepiper/teskooano/pkg/scene"
)

// Level pairs one detail representation with the camera distance at which
// it becomes the active representation.
type Level struct {
	Representation scene.Drawable
	// ActivationDistance is the closest camera distance at which this
	// level is shown. Non-negative.
	ActivationDistance float64
}

// LevelSet is an ordered sequence of levels, ascending by activation
// distance, first entry at distance 0. A set is owned by the renderer
// instance that built it and is rebuilt, never mutated, when the object's
// defining properties change.
type LevelSet []Level

// IsSorted reports whether the set satisfies the ordering invariant:
// ascending activation distances with the first at 0.
func (s LevelSet) IsSorted() bool {
	if len(s) == 0 {
		return true
	}
	if s[0].ActivationDistance != 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i].ActivationDistance < s[i-1].ActivationDistance {
			return false
		}
	}
	return true
}

// sortStable orders the set ascending by activation distance, preserving
// insertion order for equal distances so selection semantics of colliding
// levels stay deterministic.
func (s LevelSet) sortStable() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].ActivationDistance < s[j].ActivationDistance
	})
}

// Select returns the index of the active level for a camera at the given
// distance: the last level whose activation distance is <= distance, or
// the first level when the distance is below every threshold. Returns -1
// for an empty set.
func (s LevelSet) Select(distance float64) int {
	if len(s) == 0 {
		return -1
	}
	active := 0
	for i, level := range s {
		if level.ActivationDistance <= distance {
			active = i
		} else {
			break
		}
	}
	return active
}

// Dispose releases every representation that owns resources. Safe to call
// repeatedly; the representations' Dispose implementations are idempotent.
func (s LevelSet) Dispose() {
	for _, level := range s {
		if d, ok := level.Representation.(scene.Disposable); ok {
			d.Dispose()
		}
	}
}
