package render

import (
	"testing"
)

func TestNewSpriteTexture(t *testing.T) {
	tex := NewSpriteTexture(64, ColorSun)

	// Opaque bright core, transparent corners.
	center := tex.GetPixel(32, 32)
	if center.A < 200 {
		t.Errorf("center alpha = %d, want near opaque", center.A)
	}
	corner := tex.GetPixel(0, 0)
	if corner.A != 0 {
		t.Errorf("corner alpha = %d, want 0", corner.A)
	}

	// Alpha decreases outward along the horizontal axis.
	mid := tex.GetPixel(48, 32)
	edge := tex.GetPixel(62, 32)
	if !(center.A >= mid.A && mid.A >= edge.A) {
		t.Errorf("alpha not monotonic: center %d, mid %d, edge %d", center.A, mid.A, edge.A)
	}
}

func TestSpriteTextureMinimumSize(t *testing.T) {
	tex := NewSpriteTexture(0, ColorWhite)
	if tex.Width < 2 || tex.Height < 2 {
		t.Errorf("texture %dx%d, want clamped to at least 2x2", tex.Width, tex.Height)
	}
}

func TestCaptureFramebufferReuse(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(RGB(10, 20, 30))

	tex := CaptureFramebuffer(nil, fb)
	if tex.Width != 8 || tex.Height != 8 {
		t.Fatalf("texture %dx%d, want 8x8", tex.Width, tex.Height)
	}
	if tex.GetPixel(3, 3) != RGB(10, 20, 30) {
		t.Error("capture did not copy pixels")
	}

	// Same dimensions: the texture storage is reused.
	fb.Clear(RGB(40, 50, 60))
	again := CaptureFramebuffer(tex, fb)
	if again != tex {
		t.Error("same-size capture reallocated the texture")
	}
	if again.GetPixel(3, 3) != RGB(40, 50, 60) {
		t.Error("reused capture holds stale pixels")
	}

	// Dimension change: reallocated.
	resized := CaptureFramebuffer(tex, NewFramebuffer(4, 4))
	if resized == tex {
		t.Error("capture of a resized framebuffer reused the old storage")
	}
}

func TestSampleClamp(t *testing.T) {
	tex := NewTexture(4, 4)
	tex.FilterMode = FilterNearest
	for y := range 4 {
		for x := range 4 {
			tex.SetPixel(x, y, RGB(uint8(x*60), 0, 0))
		}
	}

	// Clamped sampling pins out-of-range coordinates to the edge texels.
	left := tex.Sample(-0.5, 0.5)
	if left != tex.GetPixel(0, 2) {
		t.Errorf("Sample(-0.5) = %v, want left edge %v", left, tex.GetPixel(0, 2))
	}
	right := tex.Sample(1.5, 0.5)
	if right != tex.GetPixel(3, 2) {
		t.Errorf("Sample(1.5) = %v, want right edge %v", right, tex.GetPixel(3, 2))
	}
}

func TestSampleRepeat(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.WrapU = WrapRepeat
	tex.WrapV = WrapRepeat
	tex.FilterMode = FilterNearest
	tex.SetPixel(0, 0, RGB(255, 0, 0))
	tex.SetPixel(1, 0, RGB(0, 255, 0))

	a := tex.Sample(0.25, 0.25)
	b := tex.Sample(1.25, 0.25)
	if a != b {
		t.Errorf("repeat wrap: Sample(0.25) = %v, Sample(1.25) = %v", a, b)
	}
}

func TestDisposedTextureSamplesTransparent(t *testing.T) {
	tex := NewSpriteTexture(8, ColorWhite)
	tex.Dispose()

	if !tex.Disposed() {
		t.Fatal("Disposed() = false after Dispose")
	}
	if got := tex.Sample(0.5, 0.5); got != (Color{}) {
		t.Errorf("disposed Sample = %v, want transparent", got)
	}
	tex.Dispose() // no-op
}

func TestFadeColor(t *testing.T) {
	c := RGBA(100, 150, 200, 200)

	tests := []struct {
		name    string
		opacity float64
		want    Color
	}{
		{"zero", 0, Color{}},
		{"full", 1, c},
		{"half alpha only", 0.5, RGBA(100, 150, 200, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FadeColor(c, tt.opacity); got != tt.want {
				t.Errorf("FadeColor(%v) = %v, want %v", tt.opacity, got, tt.want)
			}
		})
	}
}

func TestLerpColor(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(200, 100, 50)

	mid := LerpColor(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("LerpColor midpoint = %v", mid)
	}
	if LerpColor(a, b, 0) != a || LerpColor(a, b, 1) != b {
		t.Error("LerpColor endpoints wrong")
	}
}
