package geometry

import (
	"necklace-renderer/internal/mathutil"
	"necklace-renderer/internal/scene"
)

// Base extent of a size-1.0 charm before the charm's relative size
// scalar is applied.
const charmUnit = 0.35

// FitCharm rescales an externally loaded mesh so its largest extent
// matches what a procedural charm of the same relative size would
// occupy, and recenters it on the origin.
func FitCharm(m Mesh, size float64) Mesh {
	if len(m.Verts) == 0 {
		return m
	}
	var min, max mathutil.Vec3
	for k := 0; k < 3; k++ {
		min[k] = float64(m.Verts[0][k])
		max[k] = min[k]
	}
	for _, v := range m.Verts {
		for k := 0; k < 3; k++ {
			f := float64(v[k])
			if f < min[k] {
				min[k] = f
			}
			if f > max[k] {
				max[k] = f
			}
		}
	}
	span := max.Sub(min)
	extent := span[0]
	for k := 1; k < 3; k++ {
		if span[k] > extent {
			extent = span[k]
		}
	}
	if extent < 1e-9 {
		return m
	}
	center := min.Add(span.Scale(0.5))
	scale := charmUnit * size / extent
	return Transform(m, mathutil.Mat3Identity(), scale, center.Scale(-scale))
}

// Charm builds the procedural stand-in mesh for a charm category,
// centered at the origin at the charm's relative size. Used whenever a
// charm declares no external model or its model fails to load.
func Charm(category string, size float64) Mesh {
	s := charmUnit * size
	switch category {
	case scene.CharmBead:
		return Sphere(s*0.5, 12, 16)
	case scene.CharmGemstone:
		return Bipyramid(s*0.5, s*0.9, 8)
	case scene.CharmOrnament:
		return Torus(s*0.5, s*0.16, 20, 10)
	default:
		// Pendant, and the stand-in for unknown categories: a
		// flattened drop shape.
		drop := Sphere(s*0.5, 12, 16)
		return Transform(drop, mathutil.Mat3Diag(0.7, 1.0, 0.3), 1, mathutil.Vec3{})
	}
}
