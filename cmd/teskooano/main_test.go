package main

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func testControls() *controls {
	return &controls{
		rig:    NewOrbitState(30),
		hud:    NewHUD(),
		bodies: 6,
		width:  80,
		height: 24,
	}
}

func key(code rune) uv.KeyPressEvent {
	return uv.KeyPressEvent{Code: code, Text: string(code)}
}

func TestControlsHandleKeys(t *testing.T) {
	c := testControls()

	c.handle(key('w'))
	if c.torque.pitch != torqueStrength {
		t.Errorf("torque.pitch = %v after w, want %v", c.torque.pitch, torqueStrength)
	}
	c.handle(uv.KeyReleaseEvent{Code: 'w', Text: "w"})
	if c.torque.pitch != 0 {
		t.Errorf("torque.pitch = %v after release, want 0", c.torque.pitch)
	}

	for i := 1; i <= c.bodies; i++ {
		c.handle(uv.KeyPressEvent{Code: uv.KeyTab})
		if c.focusIdx != i%c.bodies {
			t.Fatalf("focusIdx = %d after %d tabs, want %d", c.focusIdx, i, i%c.bodies)
		}
	}

	c.handle(key('p'))
	if !c.paused {
		t.Error("p did not pause")
	}
	c.handle(key('p'))
	if c.paused {
		t.Error("second p did not resume")
	}

	c.rig.Distance.Velocity = 1
	c.handle(key('r'))
	if c.focusIdx != 0 || c.rig.Distance.Velocity != 0 {
		t.Error("r did not reset focus and rig")
	}
}

func TestControlsHandleQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   uv.KeyPressEvent
	}{
		{"escape", uv.KeyPressEvent{Code: uv.KeyEscape}},
		{"ctrl+c", uv.KeyPressEvent{Code: 'c', Mod: uv.ModCtrl}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testControls()
			c.handle(tt.ev)
			if !c.quit {
				t.Error("quit not set")
			}
		})
	}
}

func TestControlsHandleZoom(t *testing.T) {
	c := testControls()

	c.handle(uv.MouseWheelEvent{Button: uv.MouseWheelUp})
	if c.rig.Distance.Velocity >= 0 {
		t.Errorf("wheel up Distance.Velocity = %v, want negative", c.rig.Distance.Velocity)
	}
	c.handle(uv.MouseWheelEvent{Button: uv.MouseWheelDown})
	c.handle(uv.MouseWheelEvent{Button: uv.MouseWheelDown})
	if c.rig.Distance.Velocity <= 0 {
		t.Errorf("wheel down Distance.Velocity = %v, want positive", c.rig.Distance.Velocity)
	}
}

func TestControlsHandleResize(t *testing.T) {
	c := testControls()

	c.handle(uv.WindowSizeEvent{Width: 120, Height: 40})
	if !c.resized {
		t.Fatal("resize not flagged")
	}
	if c.width != 120 || c.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", c.width, c.height)
	}
}

func TestControlsDrainAppliesPendingEvents(t *testing.T) {
	c := testControls()
	events := make(chan uv.Event, 3)
	events <- key('p')
	events <- uv.KeyPressEvent{Code: uv.KeyTab}
	events <- uv.WindowSizeEvent{Width: 100, Height: 30}

	c.drain(events)

	if !c.paused || c.focusIdx != 1 || !c.resized {
		t.Error("pending events not all applied")
	}

	// Empty channel: drain returns without blocking.
	c.drain(events)
}
