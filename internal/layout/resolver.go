package layout

import (
	"necklace-renderer/internal/mathutil"
	"necklace-renderer/internal/scene"
)

// Droop is the fixed vertical offset applied to every computed
// attachment position. Presentation constant, not physically derived.
const Droop = -0.15

// Transform pairs a position with an Euler rotation in radians.
type Transform struct {
	Position mathutil.Vec3
	Rotation mathutil.Vec3
}

// Placement is one resolved charm placement. Output order follows
// binding input order; bindings that resolve to nothing are omitted.
type Placement struct {
	PointID   string
	Charm     scene.Charm
	Transform Transform
}

// Points distributes n attachment slots evenly around a loop of the
// given circumference and returns the computed transform for each.
// Slot 0 sits at angle 0 on the +X axis; rotation is yaw-only so each
// slot faces outward along its radial direction. n = 0 yields nil.
//
// length must be positive; that is a caller contract, not a checked
// condition.
func Points(length float64, n int) []Transform {
	if n == 0 {
		return nil
	}
	r := Radius(length)
	out := make([]Transform, n)
	for i := 0; i < n; i++ {
		a := SlotAngle(i, n)
		out[i] = Transform{
			Position: OnCircle(r, a, Droop),
			Rotation: mathutil.Vec3{0, a, 0},
		}
	}
	return out
}

// Resolve computes the final placement for every binding against the
// base's ordered attachment points. The declared position/rotation
// hints on the points are ignored; both are recomputed from the point's
// loop index. A binding with a custom position or rotation takes that
// value verbatim. A binding referencing a point ID absent from the base
// is dropped silently, and a base with no points resolves nothing.
//
// Pure function of its inputs, no side effects, never errors.
func Resolve(base scene.Base, bindings []scene.Binding) []Placement {
	computed := Points(base.Length, len(base.Points))

	placements := make([]Placement, 0, len(bindings))
	for _, b := range bindings {
		_, idx, ok := base.Point(b.PointID)
		if !ok {
			continue
		}
		t := computed[idx]
		if b.CustomPosition != nil {
			t.Position = *b.CustomPosition
		}
		if b.CustomRotation != nil {
			t.Rotation = *b.CustomRotation
		}
		placements = append(placements, Placement{
			PointID:   b.PointID,
			Charm:     b.Charm,
			Transform: t,
		})
	}
	return placements
}
