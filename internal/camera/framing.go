package camera

import (
	"math"

	"necklace-renderer/internal/geometry"
	"necklace-renderer/internal/mathutil"
)

// Named framing presets. Each is a fixed view rotation applied to the
// whole scene before orthographic fit.
const (
	FramingFront        = "front"
	FramingThreeQuarter = "three-quarter"
	FramingTop          = "top"
)

// DefaultFOV is the field of view used when perspective is enabled
// without an explicit FOV.
const DefaultFOV = 60.0

var framings = map[string]mathutil.Mat3{
	// Slight downward tilt so the loop reads as a loop, not a line.
	FramingFront: mathutil.RotX(mathutil.Deg2Rad(-18)),

	// Showcase angle: yaw plus a steeper tilt.
	FramingThreeQuarter: mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(-32)),
		mathutil.RotY(mathutil.Deg2Rad(35)),
	),

	// Straight down, for layout inspection renders.
	FramingTop: mathutil.RotX(mathutil.Deg2Rad(-90)),
}

// ViewMatrix returns the view rotation for a framing preset name,
// falling back to the three-quarter showcase view.
func ViewMatrix(name string) mathutil.Mat3 {
	if m, ok := framings[name]; ok {
		return m
	}
	return framings[FramingThreeQuarter]
}

// Fit computes the view-space center and pixel scale that frame the
// given meshes inside a square render target, leaving marginPx empty
// on each side. Returns ok=false when there is nothing to frame.
func Fit(meshes []geometry.Mesh, view mathutil.Mat3, renderSize, marginPx int) (center mathutil.Vec3, scale float64, ok bool) {
	min := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	any := false

	for _, m := range meshes {
		for _, v := range m.Verts {
			any = true
			t := view.MulVec3(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
			for k := 0; k < 3; k++ {
				if t[k] < min[k] {
					min[k] = t[k]
				}
				if t[k] > max[k] {
					max[k] = t[k]
				}
			}
		}
	}
	if !any {
		return mathutil.Vec3{}, 0, false
	}

	center = min.Add(max).Scale(0.5)
	span := math.Max(max[0]-min[0], max[1]-min[1])
	if span < 0.001 {
		span = 0.001
	}
	scale = float64(renderSize-2*marginPx) / span
	return center, scale, true
}

// Project transforms mesh vertices to screen coordinates. Returns
// parallel px, py, pz slices (screen X, screen Y, view depth).
// Orthographic by default; with perspective enabled, XY is scaled by a
// camera placed so the scene's half-extent fills the given FOV.
func Project(verts [][3]float32, view mathutil.Mat3, center mathutil.Vec3, scale float64, renderSize int, perspective bool, fov float64) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	half := float64(renderSize) / 2

	var camDist, zCenter float64
	if perspective {
		if fov <= 0 {
			fov = DefaultFOV
		}
		halfFOV := mathutil.Deg2Rad(fov / 2)

		zMin, zMax := math.Inf(1), math.Inf(-1)
		var xyMax float64
		for i := range verts {
			t := view.MulVec3(mathutil.Vec3{float64(verts[i][0]), float64(verts[i][1]), float64(verts[i][2])})
			if t[2] < zMin {
				zMin = t[2]
			}
			if t[2] > zMax {
				zMax = t[2]
			}
			for k := 0; k < 2; k++ {
				if d := math.Abs(t[k] - center[k]); d > xyMax {
					xyMax = d
				}
			}
		}
		zCenter = (zMin + zMax) / 2
		if xyMax < 0.001 {
			xyMax = 0.001
		}
		camDist = xyMax / math.Tan(halfFOV)
	}

	for i := range verts {
		t := view.MulVec3(mathutil.Vec3{float64(verts[i][0]), float64(verts[i][1]), float64(verts[i][2])})

		if perspective {
			depth := math.Max(camDist-(t[2]-zCenter), 0.1)
			factor := camDist / depth
			t[0] *= factor
			t[1] *= factor
		}

		px[i] = (t[0]-center[0])*scale + half
		py[i] = -(t[1]-center[1])*scale + half
		pz[i] = t[2]
	}
	return px, py, pz
}
