package raster

import (
	"image"
	"math"
)

// face holds the per-triangle state shared by the fill modes: screen
// coordinates, UVs, flat shade, bounding box and barycentric setup.
type face struct {
	x0, y0, z0 float64
	x1, y1, z1 float64
	x2, y2, z2 float64

	hasUV                  bool
	u0, v0, u1, v1, u2, v2 float64

	shade float64

	minX, maxX, minY, maxY int
	invDet                 float64
	dy12, dx21, dy20, dx02 float64
}

// setupFace validates indices and precomputes everything the pixel
// loops need. Returns ok=false for degenerate or off-screen triangles.
func setupFace(fb *FrameBuffer, px, py, pz []float64, uvs [][2]float32, vi, ti [3]int, textured bool, lc *LightConfig) (face, bool) {
	var f face

	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return f, false
		}
	}
	f.x0, f.y0, f.z0 = px[vi[0]], py[vi[0]], pz[vi[0]]
	f.x1, f.y1, f.z1 = px[vi[1]], py[vi[1]], pz[vi[1]]
	f.x2, f.y2, f.z2 = px[vi[2]], py[vi[2]], pz[vi[2]]

	f.hasUV = textured
	nuv := len(uvs)
	for _, i := range ti {
		if i < 0 || i >= nuv {
			f.hasUV = false
			break
		}
	}
	if f.hasUV {
		f.u0, f.v0 = float64(uvs[ti[0]][0]), float64(uvs[ti[0]][1])
		f.u1, f.v1 = float64(uvs[ti[1]][0]), float64(uvs[ti[1]][1])
		f.u2, f.v2 = float64(uvs[ti[2]][0]), float64(uvs[ti[2]][1])
	}

	// Face normal for flat shading
	e1x, e1y, e1z := f.x1-f.x0, f.y1-f.y0, f.z1-f.z0
	e2x, e2y, e2z := f.x2-f.x0, f.y2-f.y0, f.z2-f.z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return f, false
	}
	nx /= nl
	ny /= nl
	nz /= nl

	ndlMain := math.Abs(nx*lc.LightDir[0] + ny*lc.LightDir[1] + nz*lc.LightDir[2])
	ndlRim := math.Abs(nx*lc.RimDir[0] + ny*lc.RimDir[1] + nz*lc.RimDir[2])
	hemi := (1.0-math.Abs(ny))*0.5 + 0.5
	ndh := nx*lc.HalfMain[0] + ny*lc.HalfMain[1] + nz*lc.HalfMain[2]
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt
	f.shade = lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec

	// Bounding box clipped to the framebuffer
	size := fb.Width
	f.minX = int(math.Min(math.Min(f.x0, f.x1), f.x2))
	f.maxX = int(math.Max(math.Max(f.x0, f.x1), f.x2)) + 1
	f.minY = int(math.Min(math.Min(f.y0, f.y1), f.y2))
	f.maxY = int(math.Max(math.Max(f.y0, f.y1), f.y2)) + 1
	if f.minX < 0 {
		f.minX = 0
	}
	if f.maxX >= size {
		f.maxX = size - 1
	}
	if f.minY < 0 {
		f.minY = 0
	}
	if f.maxY >= size {
		f.maxY = size - 1
	}
	if f.minX >= f.maxX || f.minY >= f.maxY {
		return f, false
	}

	// Barycentric setup
	det := (f.y1-f.y2)*(f.x0-f.x2) + (f.x2-f.x1)*(f.y0-f.y2)
	if det > -1e-8 && det < 1e-8 {
		return f, false
	}
	f.invDet = 1.0 / det
	f.dy12 = f.y1 - f.y2
	f.dx21 = f.x2 - f.x1
	f.dy20 = f.y2 - f.y0
	f.dx02 = f.x0 - f.x2

	return f, true
}

// texel returns the surface color at barycentric weights w0/w1/w2.
func (f *face) texel(tex *image.NRGBA, w0, w1, w2 float64, defR, defG, defB, defA uint8) (r, g, b, a uint8) {
	if f.hasUV {
		u := w0*f.u0 + w1*f.u1 + w2*f.u2
		v := w0*f.v0 + w1*f.v1 + w2*f.v2
		return SampleTexture(tex, u, v)
	}
	return defR, defG, defB, defA
}

// RasterizeTriangle rasterizes a single triangle with texture mapping,
// z-buffer, sRGB color space, flat shading and ACES tone mapping.
//
// This is the hot path: the inner loop allocates nothing.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	vi, ti [3]int,
	tex *image.NRGBA,
	defR, defG, defB, defA uint8,
	lc *LightConfig,
) {
	f, ok := setupFace(fb, px, py, pz, uvs, vi, ti, tex != nil, lc)
	if !ok {
		return
	}

	size := fb.Width
	gain := f.shade * lc.Exposure
	invGamma := lc.InvGamma

	for sy := f.minY; sy <= f.maxY; sy++ {
		dsy := float64(sy) - f.y2
		rowOff := sy * size
		for sx := f.minX; sx <= f.maxX; sx++ {
			dsx := float64(sx) - f.x2
			w0 := (f.dy12*dsx + f.dx21*dsy) * f.invDet
			w1 := (f.dy20*dsx + f.dx02*dsy) * f.invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*f.z0 + w1*f.z1 + w2*f.z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := f.texel(tex, w0, w1, w2, defR, defG, defB, defA)
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode → shade → ACES → sRGB encode
			fr := math.Pow(ACESTonemap(srgbToLinear[cr]*gain), invGamma)
			fg := math.Pow(ACESTonemap(srgbToLinear[cg]*gain), invGamma)
			fbv := math.Pow(ACESTonemap(srgbToLinear[cb]*gain), invGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(fbv * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

// RasterizeTriangleAdditive renders a triangle with additive blending.
// No z-buffer check or write: colors are ADDED to existing framebuffer
// values. Used for the gemstone glow pass.
func RasterizeTriangleAdditive(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	vi, ti [3]int,
	tex *image.NRGBA,
	defR, defG, defB, defA uint8,
	lc *LightConfig,
) {
	f, ok := setupFace(fb, px, py, pz, uvs, vi, ti, tex != nil, lc)
	if !ok {
		return
	}

	size := fb.Width
	gain := f.shade * lc.Exposure
	invGamma := lc.InvGamma

	for sy := f.minY; sy <= f.maxY; sy++ {
		dsy := float64(sy) - f.y2
		rowOff := sy * size
		for sx := f.minX; sx <= f.maxX; sx++ {
			dsx := float64(sx) - f.x2
			w0 := (f.dy12*dsx + f.dx21*dsy) * f.invDet
			w1 := (f.dy20*dsx + f.dx02*dsy) * f.invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			cr, cg, cb, ca := f.texel(tex, w0, w1, w2, defR, defG, defB, defA)
			if ca < 8 {
				continue
			}

			fr := math.Pow(ACESTonemap(srgbToLinear[cr]*gain), invGamma) * 255
			fg := math.Pow(ACESTonemap(srgbToLinear[cg]*gain), invGamma) * 255
			fbv := math.Pow(ACESTonemap(srgbToLinear[cb]*gain), invGamma) * 255

			pxIdx := (rowOff + sx) * 4
			fb.Color[pxIdx] = clamp255(float64(fb.Color[pxIdx]) + fr)
			fb.Color[pxIdx+1] = clamp255(float64(fb.Color[pxIdx+1]) + fg)
			fb.Color[pxIdx+2] = clamp255(float64(fb.Color[pxIdx+2]) + fbv)
			// Alpha: brightness of the added color, so dark pixels stay transparent.
			lum := fr*0.299 + fg*0.587 + fbv*0.114
			if a := clamp255(lum); a > fb.Color[pxIdx+3] {
				fb.Color[pxIdx+3] = a
			}
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
