package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necklace-renderer/internal/scene"
)

const quadOBJ = `# two-triangle quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func writeOBJ(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseQuad(t *testing.T) {
	m, err := Parse(writeOBJ(t, "quad.obj", quadOBJ))
	require.NoError(t, err)

	assert.Len(t, m.Verts, 4)
	assert.Len(t, m.UVs, 4)
	// Quad fan-triangulates into two triangles.
	require.Len(t, m.Tris, 2)
	assert.Equal(t, [3]int{0, 1, 2}, m.Tris[0].VI)
	assert.Equal(t, [3]int{0, 2, 3}, m.Tris[1].VI)
}

func TestParseNegativeIndices(t *testing.T) {
	m, err := Parse(writeOBJ(t, "neg.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"))
	require.NoError(t, err)
	require.Len(t, m.Tris, 1)
	assert.Equal(t, [3]int{0, 1, 2}, m.Tris[0].VI)
}

func TestParseNoTexcoords(t *testing.T) {
	m, err := Parse(writeOBJ(t, "plain.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)
	// Dummy UV keeps TI indices in range for the rasterizer.
	require.Len(t, m.UVs, 1)
	assert.Equal(t, [3]int{0, 0, 0}, m.Tris[0].TI)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "no faces", content: "v 0 0 0\nv 1 0 0\n"},
		{name: "short vertex", content: "v 0 0\nf 1 1 1\n"},
		{name: "bad float", content: "v a b c\nf 1 1 1\n"},
		{name: "index out of range", content: "v 0 0 0\nf 1 2 3\n"},
		{name: "short face", content: "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeOBJ(t, "bad.obj", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoaderFallsBackToProcedural(t *testing.T) {
	loader := NewLoader(t.TempDir())

	// Missing model file: procedural stand-in plus a warning.
	m, warn := loader.Mesh(scene.Charm{ID: "c1", Category: scene.CharmBead, Size: 1, Model: "missing.obj"})
	assert.NotEmpty(t, m.Verts)
	assert.Contains(t, warn, "c1")

	// No model declared: procedural stand-in, silently.
	m, warn = loader.Mesh(scene.Charm{ID: "c2", Category: scene.CharmPendant, Size: 1})
	assert.NotEmpty(t, m.Verts)
	assert.Empty(t, warn)
}

func TestLoaderLoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "charm.obj"), []byte(quadOBJ), 0644))

	loader := NewLoader(dir)
	charm := scene.Charm{ID: "c1", Category: scene.CharmPendant, Size: 1, Model: "charm.obj"}

	m, warn := loader.Mesh(charm)
	assert.Empty(t, warn)
	assert.Len(t, m.Verts, 4)

	// Removing the file after first load must not matter: cached.
	require.NoError(t, os.Remove(filepath.Join(dir, "charm.obj")))
	m, warn = loader.Mesh(charm)
	assert.Empty(t, warn)
	assert.Len(t, m.Verts, 4)
}
