package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/render"
)

// SphereImpostor draws a body as a screen-space shaded disc: for every
// covered pixel the sphere normal is reconstructed and lit, which reads as
// a full sphere at planetary viewing distances for a fraction of the cost
// of rasterizing one.
type SphereImpostor struct {
	visibility

	Center mgl64.Vec3
	Radius float64
	Color  render.Color

	// Emissive bodies (stars) ignore scene lights and self-illuminate
	// with limb darkening.
	Emissive bool

	// Ambient is base illumination for non-emissive bodies.
	Ambient float64
}

// NewSphereImpostor creates a lit sphere impostor.
func NewSphereImpostor(center mgl64.Vec3, radius float64, c render.Color) *SphereImpostor {
	return &SphereImpostor{
		Center:  center,
		Radius:  radius,
		Color:   c,
		Ambient: 0.2,
	}
}

// SetPosition moves the impostor.
func (s *SphereImpostor) SetPosition(center mgl64.Vec3) {
	s.Center = center
}

// Draw renders the impostor into the framebuffer.
func (s *SphereImpostor) Draw(fb *render.Framebuffer, frame *Frame) {
	cam := frame.Camera
	cx, cy, dist, onScreen := cam.WorldToScreen(s.Center, fb.Width, fb.Height)
	pr := cam.ProjectedRadius(s.Center, s.Radius, fb.Height)
	if pr <= 0 {
		return
	}
	if pr < 0.5 {
		pr = 0.5
	}
	if !onScreen {
		// The center may be off screen while the limb is not; a cheap
		// conservative check keeps large close-up bodies drawable.
		if dist == 0 {
			dist = cam.DistanceTo(s.Center)
		}
		cx, cy, _, _ = projectUnclamped(cam, s.Center, fb.Width, fb.Height)
		if cx+pr < 0 || cx-pr >= float64(fb.Width) || cy+pr < 0 || cy-pr >= float64(fb.Height) {
			return
		}
	}

	right := cam.Right()
	up := cam.Up()
	back := cam.Forward().Mul(-1)

	minX := int(math.Floor(cx - pr))
	maxX := int(math.Ceil(cx + pr))
	minY := int(math.Floor(cy - pr))
	maxY := int(math.Ceil(cy + pr))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := (float64(px) - cx) / pr
			dy := (float64(py) - cy) / pr
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)

			// World-space surface normal from the camera basis. Screen Y
			// grows downward, so dy flips.
			normal := right.Mul(dx).Add(up.Mul(-dy)).Add(back.Mul(nz)).Normalize()
			depth := dist - nz*s.Radius

			var c render.Color
			if s.Emissive {
				limb := 1 - 0.35*d2
				c = render.MultiplyColor(s.Color, limb)
			} else {
				p := s.Center.Add(normal.Mul(s.Radius))
				c = render.MultiplyColor(s.Color, s.shade(normal, p, frame))
			}
			fb.SetPixelDepth(px, py, depth, c)
		}
	}
}

// shade computes Lambert illumination at surface point p with normal n.
func (s *SphereImpostor) shade(n, p mgl64.Vec3, frame *Frame) float64 {
	intensity := s.Ambient
	for _, light := range frame.Lights {
		toLight := light.Position.Sub(p)
		l := toLight.Len()
		if l == 0 {
			continue
		}
		ndotl := n.Dot(toLight.Mul(1 / l))
		if ndotl > 0 {
			intensity += ndotl * light.Intensity
		}
	}
	if intensity > 1.6 {
		intensity = 1.6
	}
	return intensity
}

// projectUnclamped projects without the on-screen NDC rejection, for
// partially visible discs.
func projectUnclamped(cam *render.Camera, pos mgl64.Vec3, w, h int) (x, y, depth float64, ok bool) {
	clip := cam.ViewProjectionMatrix().Mul4x1(pos.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	inv := 1 / clip.W()
	x = (clip.X()*inv + 1) * 0.5 * float64(w)
	y = (1 - clip.Y()*inv) * 0.5 * float64(h)
	return x, y, cam.DistanceTo(pos), true
}
