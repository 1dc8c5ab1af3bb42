package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necklace-renderer/internal/layout"
	"necklace-renderer/internal/mathutil"
	"necklace-renderer/internal/scene"
)

func meshValid(t *testing.T, m Mesh) {
	t.Helper()
	require.NotEmpty(t, m.Verts)
	require.NotEmpty(t, m.Tris)
	for _, tri := range m.Tris {
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, tri.VI[k], 0)
			assert.Less(t, tri.VI[k], len(m.Verts))
			assert.GreaterOrEqual(t, tri.TI[k], 0)
			assert.Less(t, tri.TI[k], len(m.UVs))
		}
	}
}

func TestSphereVertsOnRadius(t *testing.T) {
	const r = 2.5
	m := Sphere(r, 8, 12)
	meshValid(t, m)
	for _, v := range m.Verts {
		l := math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2]))
		assert.InDelta(t, r, l, 1e-5)
	}
}

func TestTorusVertsWithinTube(t *testing.T) {
	const ringR, tubeR = 1.0, 0.2
	m := Torus(ringR, tubeR, 12, 6)
	meshValid(t, m)
	for _, v := range m.Verts {
		// Distance from the ring circle must equal the tube radius.
		dxz := math.Sqrt(float64(v[0])*float64(v[0])+float64(v[2])*float64(v[2])) - ringR
		d := math.Sqrt(dxz*dxz + float64(v[1])*float64(v[1]))
		assert.InDelta(t, tubeR, d, 1e-5)
	}
}

func TestLoopFollowsLayoutRadius(t *testing.T) {
	tests := []struct {
		name     string
		baseType string
	}{
		{name: "chain", baseType: scene.BaseChain},
		{name: "cord", baseType: scene.BaseCord},
		{name: "beaded", baseType: scene.BaseBeaded},
		{name: "wire", baseType: scene.BaseWire},
	}

	const length = 8.0
	r := layout.Radius(length)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Loop(scene.Base{Type: tt.baseType, Length: length})
			meshValid(t, m)

			// Every vertex stays near the loop circle: within the
			// largest decoration extent of radius r from the Y axis.
			for _, v := range m.Verts {
				dxz := math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[2])*float64(v[2]))
				assert.InDelta(t, r, dxz, r*0.25)
			}
		})
	}
}

func TestCharmCategories(t *testing.T) {
	for _, cat := range []string{scene.CharmPendant, scene.CharmBead, scene.CharmGemstone, scene.CharmOrnament, "unknown"} {
		m := Charm(cat, 1.0)
		meshValid(t, m)
	}
}

func TestCharmSizeScales(t *testing.T) {
	small := Charm(scene.CharmBead, 0.5)
	large := Charm(scene.CharmBead, 2.0)

	extent := func(m Mesh) float64 {
		var max float64
		for _, v := range m.Verts {
			l := math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2]))
			if l > max {
				max = l
			}
		}
		return max
	}
	assert.InDelta(t, 4.0, extent(large)/extent(small), 1e-4)
}

func TestTransformTranslates(t *testing.T) {
	m := Sphere(1, 4, 6)
	moved := Transform(m, mathutil.Mat3Identity(), 2, mathutil.Vec3{10, 0, 0})

	for _, v := range moved.Verts {
		d := math.Sqrt(float64(v[0]-10)*float64(v[0]-10) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2]))
		assert.InDelta(t, 2.0, d, 1e-5)
	}
	// Original untouched.
	assert.InDelta(t, 1.0, float64(m.Verts[0][1]), 1e-5)
}
