package lensing

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/log"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

var logger = log.New("lensing")

// Config tunes one lensing effect. The zero value is valid.
type Config struct {
	// TargetScale is the capture target size as a fraction of the
	// viewport. A blurred backdrop does not need full resolution.
	// Defaults to 0.5.
	TargetScale float64

	// RadiusFactor scales the host radius into the effect disc radius.
	// Defaults to 2.5.
	RadiusFactor float64

	// ClearColor fills the capture target before the scene render.
	ClearColor render.Color
}

func (c *Config) applyDefaults() {
	if c.TargetScale <= 0 || c.TargetScale > 1 {
		c.TargetScale = 0.5
	}
	if c.RadiusFactor <= 0 {
		c.RadiusFactor = 2.5
	}
	if c.ClearColor.A == 0 {
		c.ClearColor = render.ColorSpace
	}
}

// State is the GPU-analogous resource bundle owned by one effect: the
// offscreen capture target, the distortion material and mesh, the host
// binding, and the viewport size the target was last sized for.
type State struct {
	Target       *render.Framebuffer
	Material     *Material
	Mesh         *Mesh
	Host         celestial.ID
	LastViewport render.Size
}

// Effect runs the capture/composite protocol for one lensing-enabled
// object. It is created lazily on the first activation request and bound
// 1:1 to its host; its lifecycle is independent of the host's LOD levels.
type Effect struct {
	cfg      Config
	state    State
	backdrop *render.Texture
	disposed bool
}

// NewEffect creates the lensing state for a host object. The returned
// effect's Mesh must be attached into the host's highest-detail
// representation sub-tree by the caller.
func NewEffect(host *celestial.Snapshot, cfg Config) *Effect {
	cfg.applyDefaults()

	radius := host.Radius * cfg.RadiusFactor
	if radius <= 0 || !celestial.Finite(radius) {
		radius = cfg.RadiusFactor
	}

	material := NewMaterial()
	return &Effect{
		cfg: cfg,
		state: State{
			Material: material,
			Mesh:     NewMesh(host.Position, radius, material),
			Host:     host.ID,
		},
	}
}

// Mesh returns the distortion mesh for scene attachment.
func (e *Effect) Mesh() *Mesh {
	return e.state.Mesh
}

// Host returns the bound object id.
func (e *Effect) Host() celestial.ID {
	return e.state.Host
}

// SetHostPosition moves the effect with its host.
func (e *Effect) SetHostPosition(pos mgl64.Vec3) {
	e.state.Mesh.SetPosition(pos)
}

// Update runs the capture/composite protocol for this frame. It must be
// called strictly before the primary scene draw:
//
//  1. hide the mesh — it must never appear in its own backdrop
//  2. redirect the context to the offscreen capture target
//  3. render the full scene with the frame's camera
//  4. restore the previous output target
//  5. feed the captured texture and elapsed time to the material
//  6. restore the mesh's entry visibility for the primary draw
//
// When several effects are active their Updates run back to back; the
// context is redirected by at most one capture at a time. The caller
// must hide every other active distortion mesh across the whole capture
// sequence — no backdrop may contain any distortion mesh, not just the
// effect's own. Step 6 restores entry visibility rather than forcing
// the mesh visible so that orchestration survives each Update.
func (e *Effect) Update(ctx *render.Context, scn *scene.Scene, frame *scene.Frame) {
	if e.disposed || ctx == nil || scn == nil || frame == nil || frame.Camera == nil {
		return
	}

	e.ensureTarget(ctx.ViewportSize())

	visible := e.state.Mesh.Visible()
	e.state.Mesh.SetVisible(false)

	ctx.SetRenderTarget(e.state.Target)
	e.state.Target.Clear(e.cfg.ClearColor)
	e.state.Target.ClearDepth()
	scn.Render(ctx, frame)
	ctx.RestoreRenderTarget()

	e.backdrop = render.CaptureFramebuffer(e.backdrop, e.state.Target)
	e.state.Material.SetBackdrop(e.backdrop)
	e.state.Material.SetTime(frame.Time)

	e.state.Mesh.SetVisible(visible)
}

// ensureTarget creates or resizes the capture target when the viewport
// changed. The target and the material's resolution input change together;
// letting them diverge leaves the backdrop stretched until the next resize
// notification.
func (e *Effect) ensureTarget(viewport render.Size) {
	if e.state.Target != nil && viewport == e.state.LastViewport {
		return
	}

	w := int(float64(viewport.Width) * e.cfg.TargetScale)
	h := int(float64(viewport.Height) * e.cfg.TargetScale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if e.state.Target != nil {
		logger.Debugf("effect %q: resizing capture target to %dx%d", e.state.Host, w, h)
	}
	e.state.Target = render.NewFramebuffer(w, h)
	e.state.Material.SetResolution(render.Size{Width: w, Height: h})
	e.state.LastViewport = viewport
}

// State exposes the effect's resource bundle, mainly for tests and debug
// overlays.
func (e *Effect) State() *State {
	return &e.state
}

// Disposed reports whether Dispose has run.
func (e *Effect) Disposed() bool {
	return e.disposed
}

// Dispose releases the capture target, backdrop texture and material.
// Idempotent.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	if e.backdrop != nil {
		e.backdrop.Dispose()
		e.backdrop = nil
	}
	e.state.Material.Dispose()
	e.state.Target = nil
	e.state.Mesh.SetVisible(false)
}
