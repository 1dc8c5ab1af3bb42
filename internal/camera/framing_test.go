package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necklace-renderer/internal/geometry"
	"necklace-renderer/internal/mathutil"
)

func TestViewMatrixPresets(t *testing.T) {
	for _, name := range []string{FramingFront, FramingThreeQuarter, FramingTop} {
		m := ViewMatrix(name)
		assert.InDelta(t, 1.0, m.Det(), 1e-9, "framing %s should be a pure rotation", name)
	}
	// Unknown names fall back to the showcase view.
	assert.Equal(t, ViewMatrix(FramingThreeQuarter), ViewMatrix("sideways"))
}

func TestFitCentersAndScales(t *testing.T) {
	// A unit sphere centered at the origin.
	meshes := []geometry.Mesh{geometry.Sphere(1, 12, 16)}
	view := mathutil.Mat3Identity()

	center, scale, ok := Fit(meshes, view, 256, 16)
	require.True(t, ok)

	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0, center[k], 1e-5)
	}
	// Span 2 across a 256−32 px target.
	assert.InDelta(t, float64(256-32)/2, scale, 1e-3)
}

func TestFitEmpty(t *testing.T) {
	_, _, ok := Fit(nil, mathutil.Mat3Identity(), 256, 16)
	assert.False(t, ok)

	_, _, ok = Fit([]geometry.Mesh{{}}, mathutil.Mat3Identity(), 256, 16)
	assert.False(t, ok)
}

func TestProjectCenterMapsToImageCenter(t *testing.T) {
	verts := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	view := mathutil.Mat3Identity()

	px, py, pz := Project(verts, view, mathutil.Vec3{}, 10, 200, false, 0)
	require.Len(t, px, 3)

	assert.InDelta(t, 100, px[0], 1e-9)
	assert.InDelta(t, 100, py[0], 1e-9)
	assert.InDelta(t, 0, pz[0], 1e-9)

	// +X moves right, +Y moves up (screen Y decreases).
	assert.InDelta(t, 110, px[1], 1e-9)
	assert.InDelta(t, 90, py[2], 1e-9)
}

func TestProjectPerspectiveShrinksFarVertices(t *testing.T) {
	// Two vertices at the same XY offset, different depth. The farther
	// one (smaller z in view space) must project closer to center.
	verts := [][3]float32{{1, 0, 1}, {1, 0, -1}}
	view := mathutil.Mat3Identity()

	px, _, _ := Project(verts, view, mathutil.Vec3{}, 10, 200, true, 60)
	near := px[0] - 100
	far := px[1] - 100
	assert.Greater(t, near, far)
	assert.Greater(t, far, 0.0)
}
