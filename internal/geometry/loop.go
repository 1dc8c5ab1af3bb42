package geometry

import (
	"math"

	"necklace-renderer/internal/layout"
	"necklace-renderer/internal/mathutil"
	"necklace-renderer/internal/scene"
)

// Loop mesh proportions relative to the loop radius.
const (
	chainLinkRatio = 0.085 // link ring radius
	chainWireRatio = 0.022 // link tube radius
	cordRatio      = 0.045
	beadRatio      = 0.075
	wireRatio      = 0.015
)

const loopSamples = 96

// Loop builds the procedural mesh for a necklace base. The loop uses
// the same circle parameterization as the attachment layout, so base
// geometry and charm placements stay in register.
func Loop(base scene.Base) Mesh {
	switch base.Type {
	case scene.BaseChain:
		return chainLoop(base.Length)
	case scene.BaseBeaded:
		return beadedLoop(base.Length)
	case scene.BaseWire:
		return tubeLoop(base.Length, wireRatio)
	default:
		// Cord, and the fallback for anything unrecognized.
		return tubeLoop(base.Length, cordRatio)
	}
}

// chainLoop places interlocking torus links around the circle,
// alternating the link plane so adjacent links appear threaded.
func chainLoop(length float64) Mesh {
	r := layout.Radius(length)
	links := int(math.Round(length * 2.5))
	if links < 8 {
		links = 8
	}

	linkR := r * chainLinkRatio
	wireR := r * chainWireRatio
	link := Torus(linkR, wireR, 16, 8)

	var m Mesh
	for i := 0; i < links; i++ {
		a := layout.SlotAngle(i, links)
		// Face the link along the loop tangent; stand every other link upright.
		rot := mathutil.RotY(-a)
		if i%2 == 1 {
			rot = mathutil.Mat3Mul(rot, mathutil.RotX(math.Pi/2))
		}
		merge(&m, Transform(link, rot, 1, layout.OnCircle(r, a, 0)))
	}
	return m
}

// beadedLoop threads beads on a thin cord.
func beadedLoop(length float64) Mesh {
	r := layout.Radius(length)
	m := tubeLoop(length, wireRatio)

	beads := int(math.Round(length * 2))
	if beads < 6 {
		beads = 6
	}
	bead := Sphere(r*beadRatio, 10, 14)
	for i := 0; i < beads; i++ {
		a := layout.SlotAngle(i, beads)
		merge(&m, Transform(bead, mathutil.Mat3Identity(), 1, layout.OnCircle(r, a, 0)))
	}
	return m
}

// tubeLoop sweeps a tube along the circle. Used directly for cord and
// wire bases and as the thread of a beaded base.
func tubeLoop(length float64, ratio float64) Mesh {
	r := layout.Radius(length)
	path := make([]mathutil.Vec3, loopSamples)
	for i := range path {
		path[i] = layout.OnCircle(r, layout.SlotAngle(i, loopSamples), 0)
	}
	return Tube(path, r*ratio, 10)
}
