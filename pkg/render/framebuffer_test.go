package render

import (
	"math"
	"testing"
)

func TestNewFramebufferClearsDepth(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	if !math.IsInf(fb.DepthAt(0, 0), 1) {
		t.Errorf("initial depth = %v, want +Inf", fb.DepthAt(0, 0))
	}
}

func TestSetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	red := RGB(255, 0, 0)

	// Out of bounds writes are dropped, not panics.
	fb.SetPixel(-1, 0, red)
	fb.SetPixel(4, 0, red)
	fb.SetPixel(0, -1, red)
	fb.SetPixel(0, 4, red)

	fb.SetPixel(2, 3, red)
	if fb.GetPixel(2, 3) != red {
		t.Error("in-bounds pixel not written")
	}
	if fb.GetPixel(-1, 0) != (Color{}) {
		t.Error("out-of-bounds read should be transparent black")
	}
}

func TestSetPixelDepthTest(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	near := RGB(255, 0, 0)
	far := RGB(0, 0, 255)

	fb.SetPixelDepth(1, 1, 10, near)
	fb.SetPixelDepth(1, 1, 20, far) // behind: rejected
	if fb.GetPixel(1, 1) != near {
		t.Error("farther write overwrote nearer pixel")
	}
	if fb.DepthAt(1, 1) != 10 {
		t.Errorf("depth = %v, want 10", fb.DepthAt(1, 1))
	}

	fb.SetPixelDepth(1, 1, 5, far) // in front: accepted
	if fb.GetPixel(1, 1) != far {
		t.Error("nearer write rejected")
	}
}

func TestBlendPixel(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(RGB(0, 0, 0))
	fb.SetPixelDepth(1, 1, 10, RGB(0, 0, 0))

	// Half-transparent white over black at a passing depth.
	fb.BlendPixel(1, 1, 5, RGBA(255, 255, 255, 128))
	got := fb.GetPixel(1, 1)
	if got.R < 120 || got.R > 135 {
		t.Errorf("blended R = %d, want ~128", got.R)
	}

	// Depth is tested but never written by blending.
	if fb.DepthAt(1, 1) != 10 {
		t.Errorf("blend wrote depth: %v", fb.DepthAt(1, 1))
	}

	// Behind the stored depth: rejected.
	before := fb.GetPixel(1, 1)
	fb.BlendPixel(1, 1, 50, RGBA(255, 0, 0, 200))
	if fb.GetPixel(1, 1) != before {
		t.Error("occluded blend modified the pixel")
	}

	// Fully transparent: no-op.
	fb.BlendPixel(1, 1, 1, RGBA(255, 0, 0, 0))
	if fb.GetPixel(1, 1) != before {
		t.Error("zero-alpha blend modified the pixel")
	}

	// Fully opaque: replaces.
	fb.BlendPixel(1, 1, 1, RGBA(10, 20, 30, 255))
	if fb.GetPixel(1, 1) != RGB(10, 20, 30) {
		t.Error("opaque blend did not replace the pixel")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	green := RGB(0, 255, 0)
	fb.DrawLine(1, 1, 8, 5, 1, green)

	if fb.GetPixel(1, 1) != green {
		t.Error("start point not drawn")
	}
	if fb.GetPixel(8, 5) != green {
		t.Error("end point not drawn")
	}
}

func TestDrawLineClipsOffscreen(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	// Must terminate and not panic with endpoints outside the buffer.
	fb.DrawLine(-5, -5, 15, 15, 1, ColorWhite)
	if fb.GetPixel(5, 5) != ColorWhite {
		t.Error("diagonal through center not drawn")
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetPixelDepth(1, 1, 2, RGB(9, 9, 9))
	fb.Clear(ColorSpace)
	fb.ClearDepth()

	if fb.GetPixel(1, 1) != ColorSpace {
		t.Error("Clear missed a pixel")
	}
	if !math.IsInf(fb.DepthAt(1, 1), 1) {
		t.Error("ClearDepth missed a depth cell")
	}
}
