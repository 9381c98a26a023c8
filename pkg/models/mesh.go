// Package models provides wire geometry for overlay representations:
// procedurally generated spheres and rings, and loading of glTF assets
// reduced to their edge structure.
package models

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tanepiper/teskooano/pkg/render"
	"github.com/tanepiper/teskooano/pkg/scene"
)

// Mesh is an edge-list mesh. Positions are world-space points; edges
// index into them. The set of edges is kept unique.
type Mesh struct {
	Name      string
	Positions []mgl64.Vec3
	Edges     [][2]int

	BoundsMin mgl64.Vec3
	BoundsMax mgl64.Vec3

	edgeSet map[[2]int]struct{}
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:    name,
		edgeSet: make(map[[2]int]struct{}),
	}
}

// AddPosition appends a point and returns its index.
func (m *Mesh) AddPosition(p mgl64.Vec3) int {
	m.Positions = append(m.Positions, p)
	return len(m.Positions) - 1
}

// AddEdge connects two points. Duplicate edges (in either direction) and
// degenerate edges are dropped.
func (m *Mesh) AddEdge(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if m.edgeSet == nil {
		m.edgeSet = make(map[[2]int]struct{})
	}
	if _, ok := m.edgeSet[key]; ok {
		return
	}
	m.edgeSet[key] = struct{}{}
	m.Edges = append(m.Edges, key)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		m.BoundsMin = mgl64.Vec3{}
		m.BoundsMax = mgl64.Vec3{}
		return
	}
	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := range 3 {
			m.BoundsMin[i] = min(m.BoundsMin[i], p[i])
			m.BoundsMax[i] = max(m.BoundsMax[i], p[i])
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl64.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Mul(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() mgl64.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// EdgeCount returns the number of unique edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// Transform applies a transformation matrix to all points and refreshes
// the bounds.
func (m *Mesh) Transform(mat mgl64.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mgl64.TransformCoordinate(m.Positions[i], mat)
	}
	m.CalculateBounds()
}

// Drawable wraps the mesh in a scene representation with the given
// color. The returned wire mesh shares the position and edge slices.
func (m *Mesh) Drawable(c render.Color) *scene.WireMesh {
	return scene.NewWireMesh(m.Positions, m.Edges, c)
}
