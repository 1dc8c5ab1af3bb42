package raster

import (
	"math"

	"necklace-renderer/internal/material"
	"necklace-renderer/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters for one rig.
type LightConfig struct {
	LightDir  mathutil.Vec3
	RimDir    mathutil.Vec3
	ViewDir   mathutil.Vec3
	HalfMain  mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	InvGamma  float64
}

// Named lighting rigs.
const (
	RigStudio   = "studio"
	RigBoutique = "boutique"
	RigDramatic = "dramatic"
)

func newRig(lightDir, rimDir, viewDir mathutil.Vec3, ambient, hemi, direct, rim, exposure float64) LightConfig {
	l := lightDir.Normalize()
	v := viewDir.Normalize()
	return LightConfig{
		LightDir: l,
		RimDir:   rimDir.Normalize(),
		ViewDir:  v,
		HalfMain: l.Sub(v).Normalize(),
		Ambient:  ambient,
		Hemi:     hemi,
		Direct:   direct,
		Rim:      rim,
		SpecInt:  0.45,
		SpecPow:  12,
		Exposure: exposure,
		InvGamma: 1.0 / 2.2,
	}
}

var rigs = map[string]LightConfig{
	// Neutral key + fill, the default.
	RigStudio: newRig(
		mathutil.Vec3{180, 260, 140},
		mathutil.Vec3{-160, 130, -210},
		mathutil.Vec3{0, -110, -400},
		0.55, 0.50, 1.50, 0.60, 1.05,
	),

	// Softer, warmer: more ambient, weaker key.
	RigBoutique: newRig(
		mathutil.Vec3{120, 200, 200},
		mathutil.Vec3{-100, 80, -160},
		mathutil.Vec3{0, -110, -400},
		0.70, 0.60, 1.10, 0.35, 1.10,
	),

	// Hard key with a strong rim, low fill.
	RigDramatic: newRig(
		mathutil.Vec3{260, 180, 60},
		mathutil.Vec3{-220, 160, -260},
		mathutil.Vec3{0, -110, -400},
		0.30, 0.30, 1.90, 1.00, 1.00,
	),
}

// Rig returns the lighting rig for a preset name, falling back to the
// studio rig.
func Rig(name string) LightConfig {
	if lc, ok := rigs[name]; ok {
		return lc
	}
	return rigs[RigStudio]
}

// ForMaterial returns a copy of the rig with the material's specular
// response substituted for the rig defaults.
func (lc LightConfig) ForMaterial(p material.Preset) LightConfig {
	out := lc
	out.SpecInt = p.SpecInt * lc.SpecInt
	if p.SpecPow > 0 {
		out.SpecPow = p.SpecPow
	}
	return out
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal[1]))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
