package renderers

import "github.com/tanepiper/teskooano/pkg/celestial"

// Coordinator owns teardown for the whole rendering side: every renderer
// in the registry plus any extra disposables handed to it (shared
// builders, pooled textures). DisposeAll is idempotent — renderers guard
// their own double-dispose and the coordinator empties its lists on the
// first run.
type Coordinator struct {
	registry *Registry
	extras   []Disposable
	disposed bool
}

// Disposable releases retained resources exactly once.
type Disposable interface {
	Dispose()
}

// NewCoordinator creates a coordinator for the given registry.
func NewCoordinator(registry *Registry) *Coordinator {
	return &Coordinator{registry: registry}
}

// Track adds a disposable released alongside the renderers.
func (c *Coordinator) Track(d Disposable) {
	if d == nil || c.disposed {
		return
	}
	c.extras = append(c.extras, d)
}

// Release disposes and unregisters a single renderer by object id,
// reporting whether one was found.
func (c *Coordinator) Release(id celestial.ID) bool {
	body := c.registry.Remove(id)
	if body == nil {
		return false
	}
	body.Dispose()
	return true
}

// DisposeAll tears down every registered renderer and every tracked
// extra, then clears the registry. Safe to call more than once.
func (c *Coordinator) DisposeAll() {
	if c.disposed {
		return
	}
	c.disposed = true

	for _, body := range c.registry.All() {
		body.Dispose()
	}
	c.registry.Clear()

	for _, d := range c.extras {
		d.Dispose()
	}
	c.extras = nil

	logger.Debug("renderer resources released")
}

// Disposed reports whether DisposeAll has run.
func (c *Coordinator) Disposed() bool {
	return c.disposed
}
