package material

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnown(t *testing.T) {
	p := Lookup("gold")
	assert.Equal(t, "gold", p.Name)
	assert.False(t, p.Glow)

	gem := Lookup("ruby")
	assert.True(t, gem.Glow)
}

func TestLookupFallback(t *testing.T) {
	for _, name := range []string{"", "unobtanium"} {
		p := Lookup(name)
		assert.Equal(t, DefaultName, p.Name)
	}
}

func TestNamesCoversTable(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(presets))
	assert.Contains(t, names, "gold")
	assert.Contains(t, names, DefaultName)
}

func TestScanTexturesEmptyDir(t *testing.T) {
	tex := ScanTextures("")
	assert.Equal(t, 0, tex.Len())
	assert.Nil(t, tex.Resolve("anything"))

	tex = ScanTextures(t.TempDir())
	assert.Equal(t, 0, tex.Len())
}

func TestScanTexturesResolvesPNG(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	f, err := os.Create(filepath.Join(dir, "Brushed.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	tex := ScanTextures(dir)
	require.Equal(t, 1, tex.Len())

	// Case-insensitive stem lookup; repeated resolves hit the cache.
	got := tex.Resolve("brushed")
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Rect.Dx())
	assert.Same(t, got, tex.Resolve("BRUSHED"))

	assert.Nil(t, tex.Resolve("missing"))
}
