package geometry

import "necklace-renderer/internal/mathutil"

// Triangle holds index triples into the vertex and texcoord arrays.
type Triangle struct {
	VI [3]int
	TI [3]int
}

// Mesh holds renderable geometry for one necklace part.
type Mesh struct {
	Verts    [][3]float32
	UVs      [][2]float32
	Tris     []Triangle
	Material string // material preset name, set by the caller
}

// Transform returns a copy of m rotated, uniformly scaled, then
// translated. The input mesh is left untouched.
func Transform(m Mesh, rot mathutil.Mat3, scale float64, translate mathutil.Vec3) Mesh {
	out := Mesh{
		Verts:    make([][3]float32, len(m.Verts)),
		UVs:      m.UVs,
		Tris:     m.Tris,
		Material: m.Material,
	}
	for i, v := range m.Verts {
		p := rot.MulVec3(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
		p = p.Scale(scale).Add(translate)
		out.Verts[i] = [3]float32{float32(p[0]), float32(p[1]), float32(p[2])}
	}
	return out
}

// merge appends src geometry into dst, offsetting indices.
func merge(dst *Mesh, src Mesh) {
	vOff := len(dst.Verts)
	tOff := len(dst.UVs)
	dst.Verts = append(dst.Verts, src.Verts...)
	dst.UVs = append(dst.UVs, src.UVs...)
	for _, t := range src.Tris {
		dst.Tris = append(dst.Tris, Triangle{
			VI: [3]int{t.VI[0] + vOff, t.VI[1] + vOff, t.VI[2] + vOff},
			TI: [3]int{t.TI[0] + tOff, t.TI[1] + tOff, t.TI[2] + tOff},
		})
	}
}
