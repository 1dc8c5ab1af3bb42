package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necklace-renderer/internal/model"
	"necklace-renderer/internal/raster"
	"necklace-renderer/internal/scene"
)

func TestRunRendersCatalog(t *testing.T) {
	outDir := t.TempDir()
	necklaces := scene.DemoCatalog()[:2]

	results := Run(Config{
		OutputDir:   outDir,
		Models:      model.NewLoader(""),
		Render:      raster.Options{},
		RenderSize:  32,
		Supersample: 1,
		Workers:     2,
	}, necklaces)

	require.Len(t, results, 2)
	for i, r := range results {
		assert.True(t, r.Success, "necklace %s: %s", r.ID, r.Error)
		assert.Equal(t, necklaces[i].ID, r.ID)

		info, err := os.Stat(filepath.Join(outDir, r.ID+".webp"))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	// Output dir path occupied by a file: MkdirAll fails per necklace.
	blocked := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	results := Run(Config{
		OutputDir:   blocked,
		Models:      model.NewLoader(""),
		RenderSize:  16,
		Supersample: 1,
		Workers:     1,
	}, scene.DemoCatalog()[:1])

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	necklaces := scene.DemoCatalog()

	require.NoError(t, WriteManifest(path, necklaces))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, len(necklaces))
	assert.Equal(t, necklaces[0].ID, entries[0].ID)
	assert.Equal(t, necklaces[0].ID+".webp", entries[0].Image)
	assert.Equal(t, len(necklaces[0].Bindings), entries[0].Charms)
}
