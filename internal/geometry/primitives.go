package geometry

import (
	"math"

	"necklace-renderer/internal/mathutil"
)

// Sphere builds a UV sphere of the given radius centered at the origin.
func Sphere(radius float64, latSteps, lonSteps int) Mesh {
	var m Mesh

	for lat := 0; lat <= latSteps; lat++ {
		theta := float64(lat) / float64(latSteps) * math.Pi
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for lon := 0; lon <= lonSteps; lon++ {
			phi := float64(lon) / float64(lonSteps) * 2 * math.Pi
			m.Verts = append(m.Verts, [3]float32{
				float32(radius * sinT * math.Cos(phi)),
				float32(radius * cosT),
				float32(radius * sinT * math.Sin(phi)),
			})
			m.UVs = append(m.UVs, [2]float32{
				float32(lon) / float32(lonSteps),
				float32(lat) / float32(latSteps),
			})
		}
	}

	stride := lonSteps + 1
	for lat := 0; lat < latSteps; lat++ {
		for lon := 0; lon < lonSteps; lon++ {
			a := lat*stride + lon
			b := a + stride
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, a + 1}, TI: [3]int{a, b, a + 1}},
				Triangle{VI: [3]int{a + 1, b, b + 1}, TI: [3]int{a + 1, b, b + 1}},
			)
		}
	}
	return m
}

// Torus builds a torus of the given ring and tube radii centered at the
// origin, lying in the XZ plane.
func Torus(ringRadius, tubeRadius float64, segments, sides int) Mesh {
	var m Mesh

	for s := 0; s <= segments; s++ {
		u := float64(s) / float64(segments) * 2 * math.Pi
		cu, su := math.Cos(u), math.Sin(u)
		for t := 0; t <= sides; t++ {
			v := float64(t) / float64(sides) * 2 * math.Pi
			cv, sv := math.Cos(v), math.Sin(v)
			r := ringRadius + tubeRadius*cv
			m.Verts = append(m.Verts, [3]float32{
				float32(r * cu),
				float32(tubeRadius * sv),
				float32(r * su),
			})
			m.UVs = append(m.UVs, [2]float32{
				float32(s) / float32(segments),
				float32(t) / float32(sides),
			})
		}
	}

	stride := sides + 1
	for s := 0; s < segments; s++ {
		for t := 0; t < sides; t++ {
			a := s*stride + t
			b := a + stride
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, a + 1}, TI: [3]int{a, b, a + 1}},
				Triangle{VI: [3]int{a + 1, b, b + 1}, TI: [3]int{a + 1, b, b + 1}},
			)
		}
	}
	return m
}

// Tube sweeps a circular cross-section along a closed path. The path
// must have at least three points; the sweep wraps from the last point
// back to the first.
func Tube(path []mathutil.Vec3, tubeRadius float64, sides int) Mesh {
	var m Mesh
	n := len(path)
	if n < 3 {
		return m
	}

	up := mathutil.Vec3{0, 1, 0}
	for i := 0; i < n; i++ {
		p := path[i]
		next := path[(i+1)%n]
		prev := path[(i-1+n)%n]
		tangent := next.Sub(prev).Normalize()

		// Frame from tangent and world up; falls back for vertical tangents.
		side := tangent.Cross(up).Normalize()
		if side.Len() < 1e-9 {
			side = mathutil.Vec3{1, 0, 0}
		}
		normal := side.Cross(tangent).Normalize()

		for s := 0; s <= sides; s++ {
			a := float64(s) / float64(sides) * 2 * math.Pi
			offset := side.Scale(math.Cos(a) * tubeRadius).Add(normal.Scale(math.Sin(a) * tubeRadius))
			v := p.Add(offset)
			m.Verts = append(m.Verts, [3]float32{float32(v[0]), float32(v[1]), float32(v[2])})
			m.UVs = append(m.UVs, [2]float32{
				float32(i) / float32(n),
				float32(s) / float32(sides),
			})
		}
	}

	stride := sides + 1
	for i := 0; i < n; i++ {
		row := i * stride
		nextRow := ((i + 1) % n) * stride
		for s := 0; s < sides; s++ {
			a := row + s
			b := nextRow + s
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, a + 1}, TI: [3]int{a, b, a + 1}},
				Triangle{VI: [3]int{a + 1, b, b + 1}, TI: [3]int{a + 1, b, b + 1}},
			)
		}
	}
	return m
}

// Bipyramid builds a gem-cut double pyramid: a ring of side vertices
// with an apex above and below. Height is measured apex to apex.
func Bipyramid(radius, height float64, sides int) Mesh {
	var m Mesh

	top := 0
	bottom := 1
	m.Verts = append(m.Verts,
		[3]float32{0, float32(height / 2), 0},
		[3]float32{0, float32(-height / 2), 0},
	)
	m.UVs = append(m.UVs, [2]float32{0.5, 0}, [2]float32{0.5, 1})

	ring := len(m.Verts)
	for s := 0; s < sides; s++ {
		a := float64(s) / float64(sides) * 2 * math.Pi
		m.Verts = append(m.Verts, [3]float32{
			float32(radius * math.Cos(a)),
			0,
			float32(radius * math.Sin(a)),
		})
		m.UVs = append(m.UVs, [2]float32{float32(s) / float32(sides), 0.5})
	}

	for s := 0; s < sides; s++ {
		a := ring + s
		b := ring + (s+1)%sides
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{top, a, b}, TI: [3]int{top, a, b}},
			Triangle{VI: [3]int{bottom, b, a}, TI: [3]int{bottom, b, a}},
		)
	}
	return m
}
