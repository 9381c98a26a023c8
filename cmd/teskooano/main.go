// teskooano - Terminal Solar System Viewer
// Watch a star system with distance-based detail switching and
// gravitational lensing, rendered with half-block characters.
//
// Controls:
//
//	W/S         - Orbit camera up/down
//	A/D         - Orbit camera left/right
//	Scroll, +/- - Zoom in/out
//	Tab         - Focus next body
//	R           - Reset camera
//	P           - Pause orbital motion
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/lod"
	"github.com/tanepiper/teskooano/pkg/log"
	"github.com/tanepiper/teskooano/pkg/models"
	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/renderers"
	"github.com/tanepiper/teskooano/pkg/scene"
)

var (
	targetFPS = flag.Int("fps", 30, "Target FPS")
	timeScale = flag.Float64("timescale", 8.0, "Orbital motion speedup")
	logLevel  = flag.String("log", "warning", "Log level (debug, info, warning, error)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "teskooano - Terminal Solar System Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: teskooano [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll, +/- - Zoom\n")
		fmt.Fprintf(os.Stderr, "  Tab         - Focus next body\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause motion\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := log.SetLevelByName(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// OrbitAxis animates one camera orbit parameter with spring decay.
type OrbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func NewOrbitAxis(fps int, initial float64) OrbitAxis {
	return OrbitAxis{
		Position: initial,
		// Damping 1.0 = critically damped, no overshoot.
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (a *OrbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// OrbitState is the spherical camera rig around the focused body.
type OrbitState struct {
	Yaw, Pitch, Distance OrbitAxis
	fps                  int
}

func NewOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Yaw:      NewOrbitAxis(fps, 0.4),
		Pitch:    NewOrbitAxis(fps, 0.3),
		Distance: NewOrbitAxis(fps, 60),
		fps:      fps,
	}
}

func (o *OrbitState) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
	o.Distance.Update()

	o.Pitch.Position = mgl64.Clamp(o.Pitch.Position, -1.4, 1.4)
	o.Distance.Position = mgl64.Clamp(o.Distance.Position, 2, 5000)
}

func (o *OrbitState) Reset() {
	o.Yaw = NewOrbitAxis(o.fps, 0.4)
	o.Pitch = NewOrbitAxis(o.fps, 0.3)
	o.Distance = NewOrbitAxis(o.fps, 60)
}

// CameraPosition converts the rig to a world position around focus.
func (o *OrbitState) CameraPosition(focus mgl64.Vec3) mgl64.Vec3 {
	d := o.Distance.Position
	cp := math.Cos(o.Pitch.Position)
	return focus.Add(mgl64.Vec3{
		d * cp * math.Sin(o.Yaw.Position),
		d * math.Sin(o.Pitch.Position),
		d * cp * math.Cos(o.Yaw.Position),
	})
}

const torqueStrength = 2.0

// controls is the input-driven state. Events are drained and applied at
// the top of every frame, on the frame goroutine, so nothing here needs
// locking.
type controls struct {
	rig           *OrbitState
	hud           *HUD
	bodies        int
	focusIdx      int
	paused        bool
	quit          bool
	resized       bool
	width, height int
	torque        struct{ pitch, yaw float64 }
}

func (c *controls) handle(ev uv.Event) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		c.width, c.height = ev.Width, ev.Height
		c.resized = true

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
			c.quit = true
		case ev.MatchString("w", "up"):
			c.torque.pitch = torqueStrength
		case ev.MatchString("s", "down"):
			c.torque.pitch = -torqueStrength
		case ev.MatchString("a", "left"):
			c.torque.yaw = -torqueStrength
		case ev.MatchString("d", "right"):
			c.torque.yaw = torqueStrength
		case ev.MatchString("tab"):
			c.focusIdx = (c.focusIdx + 1) % c.bodies
		case ev.MatchString("r"):
			c.rig.Reset()
			c.focusIdx = 0
		case ev.MatchString("p"):
			c.paused = !c.paused
		case ev.MatchString("+", "="):
			c.rig.Distance.Velocity -= c.rig.Distance.Position * 0.08
		case ev.MatchString("-", "_"):
			c.rig.Distance.Velocity += c.rig.Distance.Position * 0.08
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			c.hud.visible = !c.hud.visible
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
			c.torque.pitch = 0
		case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
			c.torque.yaw = 0
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			c.rig.Distance.Velocity -= c.rig.Distance.Position * 0.05
		case uv.MouseWheelDown:
			c.rig.Distance.Velocity += c.rig.Distance.Position * 0.05
		}
	}
}

// drain applies every pending event without blocking.
func (c *controls) drain(events <-chan uv.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handle(ev)
		default:
			return
		}
	}
}

// orbitParams drives a body's circular motion around its parent.
type orbitParams struct {
	radius float64
	period float64
	phase  float64
}

// system is the demo star system: snapshots plus their orbital motion.
type system struct {
	snapshots []celestial.Snapshot
	orbits    map[celestial.ID]orbitParams
}

func buildSystem() *system {
	return &system{
		snapshots: []celestial.Snapshot{
			{
				ID: "sol", Name: "Sol", Category: celestial.CategoryStar,
				Radius: 8, Mass: 1.989e30,
				Color: render.ColorSun, Temperature: 5778,
			},
			{
				ID: "hermes", Name: "Hermes", Category: celestial.CategoryPlanet,
				Radius: 1.2, Mass: 3.3e23,
				Color: render.RGB(170, 150, 130), ParentID: "sol",
			},
			{
				ID: "gaia", Name: "Gaia", Category: celestial.CategoryPlanet,
				Radius: 2.0, Mass: 5.97e24,
				Color: render.RGB(90, 140, 200), ParentID: "sol",
			},
			{
				ID: "selene", Name: "Selene", Category: celestial.CategoryMoon,
				Radius: 0.5, Mass: 7.3e22,
				Color: render.ColorIce, ParentID: "gaia",
			},
			{
				ID: "kronos", Name: "Kronos", Category: celestial.CategoryPlanet,
				Radius: 4.5, Mass: 5.7e26,
				Color: render.RGB(210, 180, 140), ParentID: "sol",
			},
			{
				ID: "cygnus", Name: "Cygnus X-1", Category: celestial.CategoryBlackHole,
				Radius: 3.0, Mass: 4.2e31,
				Color: render.ColorBlack, ParentID: "sol", Lensing: true,
			},
		},
		orbits: map[celestial.ID]orbitParams{
			"hermes": {radius: 25, period: 20, phase: 0.8},
			"gaia":   {radius: 45, period: 45, phase: 2.1},
			"selene": {radius: 5, period: 6, phase: 0},
			"kronos": {radius: 90, period: 140, phase: 4.0},
			"cygnus": {radius: 160, period: 400, phase: 5.5},
		},
	}
}

// advance recomputes every body's position at simulation time t.
func (s *system) advance(t float64) {
	pos := make(map[celestial.ID]mgl64.Vec3, len(s.snapshots))
	for i := range s.snapshots {
		snap := &s.snapshots[i]
		parent := pos[snap.ParentID]
		orbit, ok := s.orbits[snap.ID]
		if !ok {
			pos[snap.ID] = snap.Position
			continue
		}
		angle := orbit.phase + 2*math.Pi*t/orbit.period
		snap.Position = parent.Add(mgl64.Vec3{
			orbit.radius * math.Cos(angle),
			0,
			orbit.radius * math.Sin(angle),
		})
		pos[snap.ID] = snap.Position
	}
}

func (s *system) lookup(id celestial.ID) *celestial.Snapshot {
	for i := range s.snapshots {
		if s.snapshots[i].ID == id {
			return &s.snapshots[i]
		}
	}
	return nil
}

// HUD renders an overlay with system info.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	visible   bool
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now(), visible: true}
}

func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *HUD) Render(width, height int, focus string, distance float64) {
	const (
		reset   = "\x1b[0m"
		bold    = "\x1b[1m"
		bgBlack = "\x1b[40m"
		fgGreen = "\x1b[92m"
		fgCyan  = "\x1b[96m"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + "\x1b[2K")
	if !h.visible {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	title := fmt.Sprintf(" %s  d=%.0f ", focus, distance)
	col := max((width-len(title))/2, 1)
	fmt.Print(moveTo(1, col) + bold + bgBlack + fgCyan + title + reset)
}

func run() error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	presenter := render.NewPresenter(term, width, height)
	fbWidth, fbHeight := presenter.FramebufferSize()
	gctx := render.NewContext(render.NewFramebuffer(fbWidth, fbHeight))

	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 10000)

	// Build the system and its renderers.
	sys := buildSystem()
	sys.advance(0)

	builder := lod.NewBuilder()
	registry := renderers.NewRegistry()
	dispatcher := renderers.NewDispatcher(registry)
	fade := lod.NewFadeController(builder.Billboards())
	coordinator := renderers.NewCoordinator(registry)
	coordinator.Track(builder)

	scn := scene.New()
	for i := range sys.snapshots {
		snap := &sys.snapshots[i]
		body := renderers.NewBody(builder, snap, renderers.ConfigFor(snap.Category))
		registry.Add(body)
		scn.Add(body.Group())

		// Orbit path overlay.
		if orbit, ok := sys.orbits[snap.ID]; ok {
			path := models.Orbit(orbit.radius, 96).Drawable(render.RGBA(60, 60, 80, 255))
			if parent := sys.lookup(snap.ParentID); parent != nil {
				path.SetPosition(parent.Position)
			}
			scn.Add(path)
		}
	}
	defer coordinator.DisposeAll()

	hud := NewHUD()
	ctl := &controls{
		rig:    NewOrbitState(*targetFPS),
		hud:    hud,
		bodies: len(sys.snapshots),
		width:  width,
		height: height,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	events := term.Events()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()
	simTime := 0.0

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		ctl.drain(events)
		if ctl.quit {
			cleanup()
			return nil
		}
		if ctl.resized {
			ctl.resized = false
			width, height = ctl.width, ctl.height
			term.Erase()
			term.Resize(width, height)
			presenter = render.NewPresenter(term, width, height)
			fbWidth, fbHeight = presenter.FramebufferSize()
			gctx.ResizeScreen(fbWidth, fbHeight)
			camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		ctl.rig.Pitch.Velocity += ctl.torque.pitch * dt
		ctl.rig.Yaw.Velocity += ctl.torque.yaw * dt
		ctl.torque.pitch *= 0.9
		ctl.torque.yaw *= 0.9
		ctl.rig.Update()

		if !ctl.paused {
			simTime += dt * *timeScale
			sys.advance(simTime)
			dispatcher.ApplyAll(sys.snapshots)
		}

		focus := &sys.snapshots[ctl.focusIdx]
		camera.SetPosition(ctl.rig.CameraPosition(focus.Position))
		camera.LookAt(focus.Position)

		fade.Update(camera.Position)

		frame := &scene.Frame{
			Time:   simTime,
			Camera: camera,
			Lights: scn.Lights(),
		}
		dispatcher.UpdateFrame(gctx, scn, frame)

		// Final composite into the screen target.
		screen := gctx.Target()
		screen.Clear(render.ColorSpace)
		screen.ClearDepth()
		scn.Render(gctx, frame)

		if err := presenter.Present(screen); err != nil {
			cleanup()
			return fmt.Errorf("present: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(width, height, focus.Name, ctl.rig.Distance.Position)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
