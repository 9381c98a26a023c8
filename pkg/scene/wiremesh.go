package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/render"
)

// WireMesh draws a mesh's edges, used for imported high-detail custom LOD
// levels (ring systems, station models) where a shaded impostor cannot
// represent the silhouette.
type WireMesh struct {
	visibility

	Positions []mgl64.Vec3
	Edges     [][2]int
	Transform mgl64.Mat4
	Color     render.Color
}

// NewWireMesh creates a wire mesh drawable.
func NewWireMesh(positions []mgl64.Vec3, edges [][2]int, c render.Color) *WireMesh {
	return &WireMesh{
		Positions: positions,
		Edges:     edges,
		Transform: mgl64.Ident4(),
		Color:     c,
	}
}

// SetPosition replaces the transform's translation, keeping rotation and
// scale.
func (w *WireMesh) SetPosition(pos mgl64.Vec3) {
	w.Transform.SetCol(3, pos.Vec4(1))
}

// SetTransform replaces the model-to-world transform.
func (w *WireMesh) SetTransform(m mgl64.Mat4) {
	w.Transform = m
}

// Draw projects and draws every edge.
func (w *WireMesh) Draw(fb *render.Framebuffer, frame *Frame) {
	cam := frame.Camera
	for _, e := range w.Edges {
		if e[0] < 0 || e[0] >= len(w.Positions) || e[1] < 0 || e[1] >= len(w.Positions) {
			continue
		}
		p1 := mgl64.TransformCoordinate(w.Positions[e[0]], w.Transform)
		p2 := mgl64.TransformCoordinate(w.Positions[e[1]], w.Transform)

		x1, y1, d1, vis1 := cam.WorldToScreen(p1, fb.Width, fb.Height)
		x2, y2, d2, vis2 := cam.WorldToScreen(p2, fb.Width, fb.Height)
		if !vis1 && !vis2 {
			continue
		}
		fb.DrawLine(int(x1), int(y1), int(x2), int(y2), (d1+d2)/2, w.Color)
	}
}
