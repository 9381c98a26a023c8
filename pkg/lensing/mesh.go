package lensing

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

// Mesh is the screen-facing distortion disc attached to a massive body's
// highest-detail representation. Its visibility is toggled by the effect's
// capture protocol every frame: hidden while the backdrop is captured so
// it never appears in its own background, shown again for the primary
// draw.
type Mesh struct {
	hidden bool

	// Position is the host body's world position.
	Position mgl64.Vec3

	// Radius is the world-space radius of the effect disc, typically a
	// small multiple of the host's physical radius.
	Radius float64

	material *Material
}

// NewMesh creates the distortion mesh for a host at the given position.
func NewMesh(pos mgl64.Vec3, radius float64, material *Material) *Mesh {
	return &Mesh{
		Position: pos,
		Radius:   radius,
		material: material,
	}
}

// Material returns the mesh's distortion material.
func (m *Mesh) Material() *Material {
	return m.material
}

// SetPosition moves the effect with its host.
func (m *Mesh) SetPosition(pos mgl64.Vec3) {
	m.Position = pos
}

// Visible implements scene.Drawable.
func (m *Mesh) Visible() bool {
	return !m.hidden
}

// SetVisible implements scene.Drawable.
func (m *Mesh) SetVisible(v bool) {
	m.hidden = !v
}

// Draw composites the distortion disc over the framebuffer, sampling the
// captured backdrop through the material.
func (m *Mesh) Draw(fb *render.Framebuffer, frame *scene.Frame) {
	cam := frame.Camera
	cx, cy, dist, ok := cam.WorldToScreen(m.Position, fb.Width, fb.Height)
	if !ok {
		return
	}
	pr := cam.ProjectedRadius(m.Position, m.Radius, fb.Height)
	if pr < 1 {
		return
	}

	minX := int(math.Floor(cx - pr))
	maxX := int(math.Ceil(cx + pr))
	minY := int(math.Floor(cy - pr))
	maxY := int(math.Ceil(cy + pr))

	// Slightly in front of the host surface so the disc survives the
	// depth test against it.
	depth := dist - m.Radius*1.01

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := (float64(px) - cx) / pr
			dy := (float64(py) - cy) / pr
			u := float64(px) / float64(fb.Width)
			v := float64(py) / float64(fb.Height)
			c, inside := m.material.Shade(dx, dy, u, v)
			if !inside {
				continue
			}
			fb.BlendPixel(px, py, depth, c)
		}
	}
}
