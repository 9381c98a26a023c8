package renderers

import (
	"sort"

	"github.com/tanepiper/teskooano/pkg/celestial"
)

// Registry tracks the live renderers, indexed by object id and grouped by
// category so light sources and star-specific bookkeeping stay cheap to
// reach.
type Registry struct {
	byID       map[celestial.ID]*Body
	byCategory map[celestial.Category]map[celestial.ID]*Body
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:       make(map[celestial.ID]*Body),
		byCategory: make(map[celestial.Category]map[celestial.ID]*Body),
	}
}

// Add registers a renderer. A renderer already registered under the same
// id is replaced in both indexes but not disposed; disposal stays with
// the caller.
func (r *Registry) Add(body *Body) {
	if body == nil {
		return
	}
	id := body.ObjectID()
	if prev, ok := r.byID[id]; ok {
		r.removeFromCategory(prev)
	}
	r.byID[id] = body

	cat := body.Category()
	bucket := r.byCategory[cat]
	if bucket == nil {
		bucket = make(map[celestial.ID]*Body)
		r.byCategory[cat] = bucket
	}
	bucket[id] = body
}

// Remove unregisters and returns the renderer for id, or nil.
func (r *Registry) Remove(id celestial.ID) *Body {
	body, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	r.removeFromCategory(body)
	return body
}

func (r *Registry) removeFromCategory(body *Body) {
	cat := body.Category()
	if bucket, ok := r.byCategory[cat]; ok {
		delete(bucket, body.ObjectID())
		if len(bucket) == 0 {
			delete(r.byCategory, cat)
		}
	}
}

// Lookup returns the renderer for id, or nil.
func (r *Registry) Lookup(id celestial.ID) *Body {
	return r.byID[id]
}

// Category returns the renderers of one category, sorted by object id.
func (r *Registry) Category(cat celestial.Category) []*Body {
	bucket := r.byCategory[cat]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*Body, 0, len(bucket))
	for _, body := range bucket {
		out = append(out, body)
	}
	sortBodies(out)
	return out
}

// All returns every registered renderer, sorted by object id so frame
// iteration order is deterministic.
func (r *Registry) All() []*Body {
	out := make([]*Body, 0, len(r.byID))
	for _, body := range r.byID {
		out = append(out, body)
	}
	sortBodies(out)
	return out
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Clear drops every entry without disposing the renderers.
func (r *Registry) Clear() {
	r.byID = make(map[celestial.ID]*Body)
	r.byCategory = make(map[celestial.Category]map[celestial.ID]*Body)
}

func sortBodies(bodies []*Body) {
	sort.Slice(bodies, func(i, j int) bool {
		return bodies[i].ObjectID() < bodies[j].ObjectID()
	})
}
