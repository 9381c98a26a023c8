package renderers

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

// Dispatcher drives the per-frame renderer updates. The basic update
// (time, lights, camera) runs for every renderer; the graphics context
// and scene are supplied only to renderers whose category declares the
// lensing capability, and only when all of context, scene and camera are
// actually available. A missing piece skips the capture pass for that
// frame without raising an error — the frame carries on.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Update runs the basic per-frame update on every registered renderer.
// Time, lights and camera travel as explicit parameters.
func (d *Dispatcher) Update(time float64, lights []celestial.LightSource, cam *render.Camera) {
	for _, body := range d.registry.All() {
		body.Update(time, lights, cam)
	}
}

// UpdateFrame runs the basic update for every renderer and then, for
// renderers that declared the lensing capability, the capture/composite
// pass. Capture passes run strictly one after another so no effect
// observes another's redirected render target.
func (d *Dispatcher) UpdateFrame(ctx *render.Context, scn *scene.Scene, frame *scene.Frame) {
	if frame == nil {
		return
	}
	bodies := d.registry.All()
	for _, body := range bodies {
		body.Update(frame.Time, frame.Lights, frame.Camera)
	}

	if ctx == nil || scn == nil || frame.Camera == nil {
		// Context not ready this frame; distortions simply skip.
		logger.Debug("lensing context unavailable, skipping capture passes")
		return
	}

	var lensed []*Body
	for _, body := range bodies {
		if !body.NeedsLensingContext() {
			continue
		}
		if body.Effect() == nil {
			body.EnableLensing()
		}
		if body.Effect() != nil {
			lensed = append(lensed, body)
		}
	}

	// All distortion meshes stay hidden across the whole capture
	// sequence: no backdrop may contain another effect's mesh, only the
	// undistorted scene behind it.
	for _, body := range lensed {
		body.Effect().Mesh().SetVisible(false)
	}
	for _, body := range lensed {
		body.UpdateLensing(ctx, scn, frame)
	}
	for _, body := range lensed {
		body.Effect().Mesh().SetVisible(true)
	}
}

// Apply routes a fresh snapshot to the matching renderer as a partial
// update. Unknown ids are ignored; object creation and removal belong to
// the orchestrator, not the dispatcher.
func (d *Dispatcher) Apply(next *celestial.Snapshot) {
	if next == nil {
		return
	}
	if body := d.registry.Lookup(next.ID); body != nil {
		body.ApplyDiff(next)
	}
}

// ApplyAll routes a batch of snapshots, one partial update each.
func (d *Dispatcher) ApplyAll(snapshots []celestial.Snapshot) {
	for i := range snapshots {
		d.Apply(&snapshots[i])
	}
}
