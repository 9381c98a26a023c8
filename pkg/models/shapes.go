package models

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere generates a latitude/longitude wire sphere centered on the
// origin. rings counts the latitude bands between the poles, segments
// the longitude divisions. Minimums are clamped so the result is always
// drawable.
func Sphere(radius float64, rings, segments int) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	m := NewMesh("sphere")

	top := m.AddPosition(mgl64.Vec3{0, radius, 0})
	bottom := m.AddPosition(mgl64.Vec3{0, -radius, 0})

	// Interior rings, pole to pole.
	grid := make([][]int, rings-1)
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := radius * math.Cos(phi)
		ringRadius := radius * math.Sin(phi)

		row := make([]int, segments)
		for s := range segments {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			row[s] = m.AddPosition(mgl64.Vec3{
				ringRadius * math.Cos(theta),
				y,
				ringRadius * math.Sin(theta),
			})
		}
		grid[r-1] = row
	}

	for ri, row := range grid {
		for s := range segments {
			next := (s + 1) % segments
			m.AddEdge(row[s], row[next])
			if ri == 0 {
				m.AddEdge(top, row[s])
			} else {
				m.AddEdge(grid[ri-1][s], row[s])
			}
			if ri == len(grid)-1 {
				m.AddEdge(row[s], bottom)
			}
		}
	}

	m.CalculateBounds()
	return m
}

// Ring generates a flat annulus in the XZ plane: inner and outer rims
// joined by radial spokes. Used for planetary ring systems.
func Ring(innerRadius, outerRadius float64, segments int) *Mesh {
	segments = max(segments, 3)
	if outerRadius < innerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
	}

	m := NewMesh("ring")

	inner := make([]int, segments)
	outer := make([]int, segments)
	for s := range segments {
		theta := 2 * math.Pi * float64(s) / float64(segments)
		cos, sin := math.Cos(theta), math.Sin(theta)
		inner[s] = m.AddPosition(mgl64.Vec3{innerRadius * cos, 0, innerRadius * sin})
		outer[s] = m.AddPosition(mgl64.Vec3{outerRadius * cos, 0, outerRadius * sin})
	}

	for s := range segments {
		next := (s + 1) % segments
		m.AddEdge(inner[s], inner[next])
		m.AddEdge(outer[s], outer[next])
		m.AddEdge(inner[s], outer[s])
	}

	m.CalculateBounds()
	return m
}

// Orbit generates a circular orbit path in the XZ plane around the
// origin, for trajectory overlays.
func Orbit(radius float64, segments int) *Mesh {
	segments = max(segments, 8)

	m := NewMesh("orbit")
	points := make([]int, segments)
	for s := range segments {
		theta := 2 * math.Pi * float64(s) / float64(segments)
		points[s] = m.AddPosition(mgl64.Vec3{radius * math.Cos(theta), 0, radius * math.Sin(theta)})
	}
	for s := range segments {
		m.AddEdge(points[s], points[(s+1)%segments])
	}

	m.CalculateBounds()
	return m
}
