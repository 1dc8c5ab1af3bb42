package layout

import (
	"math"

	"necklace-renderer/internal/mathutil"
)

// The loop is modeled as a perfect circle in the XZ plane whose
// circumference equals the declared base length. This parameterization
// is the single shared utility for both attachment layout and the
// procedural loop geometry builders.

// Radius returns the radius of a circle with the given circumference.
func Radius(circumference float64) float64 {
	return circumference / (2 * math.Pi)
}

// SlotAngle returns the angle in radians of slot i among n equally
// spaced slots, starting at 0 on the local +X axis and increasing with
// the cos/sin parameterization.
func SlotAngle(i, n int) float64 {
	return float64(i) / float64(n) * 2 * math.Pi
}

// OnCircle returns the point at the given angle on a circle of the
// given radius in the XZ plane, lifted to height y.
func OnCircle(radius, angle, y float64) mathutil.Vec3 {
	return mathutil.Vec3{math.Cos(angle) * radius, y, math.Sin(angle) * radius}
}
