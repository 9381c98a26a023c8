package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testCamera() *Camera {
	c := NewCamera()
	c.SetPosition(mgl64.Vec3{0, 0, 10})
	c.SetAspectRatio(1)
	return c
}

func TestWorldToScreenCenter(t *testing.T) {
	c := testCamera()

	// A point straight ahead projects to the screen center.
	x, y, depth, visible := c.WorldToScreen(mgl64.Vec3{0, 0, 0}, 100, 100)
	if !visible {
		t.Fatal("point ahead of camera not visible")
	}
	if math.Abs(x-50) > 0.5 || math.Abs(y-50) > 0.5 {
		t.Errorf("projected to (%v, %v), want screen center", x, y)
	}
	if math.Abs(depth-10) > 1e-9 {
		t.Errorf("depth = %v, want camera distance 10", depth)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	c := testCamera()
	if _, _, _, visible := c.WorldToScreen(mgl64.Vec3{0, 0, 20}, 100, 100); visible {
		t.Error("point behind camera reported visible")
	}
}

func TestWorldToScreenOffscreen(t *testing.T) {
	c := testCamera()
	// Far off to the side, outside the frustum.
	if _, _, _, visible := c.WorldToScreen(mgl64.Vec3{1000, 0, 0}, 100, 100); visible {
		t.Error("point outside the frustum reported visible")
	}
}

func TestWorldToScreenYFlip(t *testing.T) {
	c := testCamera()

	// World up maps to smaller screen Y.
	_, yUp, _, ok := c.WorldToScreen(mgl64.Vec3{0, 2, 0}, 100, 100)
	if !ok {
		t.Fatal("upper point not visible")
	}
	_, yDown, _, ok := c.WorldToScreen(mgl64.Vec3{0, -2, 0}, 100, 100)
	if !ok {
		t.Fatal("lower point not visible")
	}
	if yUp >= yDown {
		t.Errorf("screen Y not flipped: up %v, down %v", yUp, yDown)
	}
}

func TestLookAt(t *testing.T) {
	c := testCamera()
	target := mgl64.Vec3{30, 5, -20}
	c.LookAt(target)

	forward := c.Forward()
	want := target.Sub(c.Position).Normalize()
	if !forward.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Forward = %v, want %v", forward, want)
	}

	// The target lands on the screen center after LookAt.
	x, y, _, visible := c.WorldToScreen(target, 200, 200)
	if !visible {
		t.Fatal("look-at target not visible")
	}
	if math.Abs(x-100) > 0.5 || math.Abs(y-100) > 0.5 {
		t.Errorf("target projected to (%v, %v), want center", x, y)
	}
}

func TestDistanceTo(t *testing.T) {
	c := testCamera()
	if got := c.DistanceTo(mgl64.Vec3{0, 0, 10}); got != 0 {
		t.Errorf("distance to camera position = %v, want 0", got)
	}
	if got := c.DistanceTo(mgl64.Vec3{3, 4, 10}); math.Abs(got-5) > 1e-12 {
		t.Errorf("distance = %v, want 5", got)
	}
}

func TestProjectedRadius(t *testing.T) {
	c := testCamera()

	near := c.ProjectedRadius(mgl64.Vec3{0, 0, 0}, 2, 100)
	far := c.ProjectedRadius(mgl64.Vec3{0, 0, -90}, 2, 100)
	if near <= far {
		t.Errorf("projected radius should shrink with distance: near %v, far %v", near, far)
	}
	if got := c.ProjectedRadius(mgl64.Vec3{0, 0, 0}, 0, 100); got != 0 {
		t.Errorf("zero world radius projected to %v", got)
	}
}

func TestViewMatrixCaching(t *testing.T) {
	c := testCamera()
	before := c.ViewMatrix()

	c.SetPosition(mgl64.Vec3{5, 0, 10})
	after := c.ViewMatrix()
	if before == after {
		t.Error("view matrix not recomputed after a position change")
	}
}
