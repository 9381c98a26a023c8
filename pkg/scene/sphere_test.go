package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/render"
)

func TestSphereImpostorDraw(t *testing.T) {
	s := NewSphereImpostor(mgl64.Vec3{}, 2, render.RGB(200, 100, 50))
	fb := render.NewFramebuffer(100, 100)

	frame := sceneFrame()
	frame.Lights = []celestial.LightSource{{
		Position:  mgl64.Vec3{0, 0, 50},
		Color:     render.ColorWhite,
		Intensity: 1,
	}}
	s.Draw(fb, frame)

	center := fb.GetPixel(50, 50)
	if center == (render.Color{}) {
		t.Fatal("sphere disc not drawn at screen center")
	}
	// The disc writes depth so later geometry is occluded correctly.
	if fb.DepthAt(50, 50) >= 10 {
		t.Errorf("center depth = %v, want in front of the center distance", fb.DepthAt(50, 50))
	}
	// Corners stay untouched.
	if fb.GetPixel(2, 2) != (render.Color{}) {
		t.Error("pixel far outside the disc was written")
	}
}

func TestSphereImpostorLit(t *testing.T) {
	s := NewSphereImpostor(mgl64.Vec3{}, 2, render.RGB(200, 200, 200))
	frame := sceneFrame()

	// Light from the camera side: lit center.
	lit := render.NewFramebuffer(100, 100)
	frame.Lights = []celestial.LightSource{{Position: mgl64.Vec3{0, 0, 50}, Color: render.ColorWhite, Intensity: 1}}
	s.Draw(lit, frame)

	// No lights: only ambient remains.
	dark := render.NewFramebuffer(100, 100)
	frame.Lights = nil
	s.Draw(dark, frame)

	if lit.GetPixel(50, 50).R <= dark.GetPixel(50, 50).R {
		t.Errorf("lit center %d not brighter than unlit %d", lit.GetPixel(50, 50).R, dark.GetPixel(50, 50).R)
	}
}

func TestSphereImpostorEmissiveIgnoresLights(t *testing.T) {
	s := NewSphereImpostor(mgl64.Vec3{}, 2, render.ColorSun)
	s.Emissive = true

	fb := render.NewFramebuffer(100, 100)
	frame := sceneFrame()
	frame.Lights = nil
	s.Draw(fb, frame)

	center := fb.GetPixel(50, 50)
	if center.R < render.ColorSun.R/2 {
		t.Errorf("emissive center %v too dark without lights", center)
	}
}

func TestSpriteDraw(t *testing.T) {
	sprite := NewSprite(mgl64.Vec3{}, render.NewSpriteTexture(32, render.ColorSun), 4)
	fb := render.NewFramebuffer(100, 100)
	frame := sceneFrame()

	// Opacity zero: nothing drawn.
	sprite.SetOpacity(0)
	sprite.Draw(fb, frame)
	if fb.GetPixel(50, 50) != (render.Color{}) {
		t.Error("fully faded sprite wrote pixels")
	}

	sprite.SetOpacity(0.85)
	sprite.Draw(fb, frame)
	if fb.GetPixel(50, 50) == (render.Color{}) {
		t.Error("visible sprite drew nothing at its center")
	}
	// Sprites never write depth.
	if fb.DepthAt(50, 50) != fb.DepthAt(0, 0) {
		t.Error("sprite wrote depth")
	}
}

func TestSpriteDisposedDrawsNothing(t *testing.T) {
	sprite := NewSprite(mgl64.Vec3{}, render.NewSpriteTexture(32, render.ColorSun), 4)
	sprite.SetOpacity(1)
	sprite.Dispose()

	fb := render.NewFramebuffer(100, 100)
	sprite.Draw(fb, sceneFrame())
	if fb.GetPixel(50, 50) != (render.Color{}) {
		t.Error("disposed sprite wrote pixels")
	}
}

func TestWireMeshDraw(t *testing.T) {
	positions := []mgl64.Vec3{{-2, 0, 0}, {2, 0, 0}}
	edges := [][2]int{{0, 1}, {0, 5}} // second edge is out of range
	w := NewWireMesh(positions, edges, render.ColorWhite)

	fb := render.NewFramebuffer(100, 100)
	w.Draw(fb, sceneFrame())

	if fb.GetPixel(50, 50) != render.ColorWhite {
		t.Error("edge through the center not drawn")
	}
}
