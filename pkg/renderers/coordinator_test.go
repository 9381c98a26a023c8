package renderers

import (
	"testing"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/lod"
)

type trackedResource struct {
	disposals int
}

func (r *trackedResource) Dispose() { r.disposals++ }

func TestCoordinatorDisposeAll(t *testing.T) {
	builder := lod.NewBuilder()
	registry := NewRegistry()

	planet := NewBody(builder, planetSnapshot(), ConfigFor(celestial.CategoryPlanet))
	hole := NewBody(builder, blackHoleSnapshot(), ConfigFor(celestial.CategoryBlackHole))
	hole.EnableLensing()
	registry.Add(planet)
	registry.Add(hole)

	extra := &trackedResource{}
	c := NewCoordinator(registry)
	c.Track(extra)
	c.Track(nil) // ignored

	c.DisposeAll()

	if !planet.Disposed() || !hole.Disposed() {
		t.Error("renderers not disposed")
	}
	if !hole.Effect().Disposed() {
		t.Error("lensing effect not disposed")
	}
	if registry.Len() != 0 {
		t.Error("registry not cleared")
	}
	if builder.Billboards().Len() != 0 {
		t.Error("billboard state left behind")
	}
	if extra.disposals != 1 {
		t.Errorf("tracked extra disposed %d times, want 1", extra.disposals)
	}

	// Second run is a no-op.
	c.DisposeAll()
	if extra.disposals != 1 {
		t.Errorf("repeat DisposeAll re-disposed extras: %d", extra.disposals)
	}
	if !c.Disposed() {
		t.Error("Disposed() = false after DisposeAll")
	}
}

func TestCoordinatorRelease(t *testing.T) {
	builder := lod.NewBuilder()
	registry := NewRegistry()
	body := NewBody(builder, planetSnapshot(), ConfigFor(celestial.CategoryPlanet))
	registry.Add(body)

	c := NewCoordinator(registry)
	if !c.Release("gaia") {
		t.Fatal("Release returned false for a registered renderer")
	}
	if !body.Disposed() {
		t.Error("released renderer not disposed")
	}
	if registry.Len() != 0 {
		t.Error("released renderer still registered")
	}
	if c.Release("gaia") {
		t.Error("second Release should return false")
	}
}

func TestConfigForUnknownCategory(t *testing.T) {
	cfg := ConfigFor(celestial.Category("comet"))
	if cfg.Category != celestial.Category("comet") {
		t.Errorf("category = %s, want comet", cfg.Category)
	}
	if cfg.Lensing {
		t.Error("unknown category must not claim the lensing capability")
	}
	if cfg.BaseColor.A == 0 {
		t.Error("unknown category needs a usable base color")
	}
}
