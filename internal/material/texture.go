package material

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/ftrvxmtrx/tga"
)

// Resolver resolves a texture stem to a decoded image, or nil when the
// stem has no usable texture. The rasterizer treats nil as flat color.
type Resolver interface {
	Resolve(stem string) *image.NRGBA
}

// Textures is a concurrency-safe texture cache over a texture
// directory. Stems resolve case-insensitively against .tga, .png and
// .jpg files found anywhere under the directory.
type Textures struct {
	mu      sync.RWMutex
	images  map[string]*image.NRGBA
	entries map[string]string // lowercase stem → path
}

// ScanTextures indexes the texture files under dir. A missing or empty
// directory is not an error: every lookup just falls back to flat color.
func ScanTextures(dir string) *Textures {
	t := &Textures{
		images:  make(map[string]*image.NRGBA),
		entries: make(map[string]string),
	}
	if dir == "" {
		return t
	}
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".tga" && ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := t.entries[stem]; !exists {
			t.entries[stem] = path
		}
		return nil
	})
	return t
}

// Len returns the number of indexed texture files.
func (t *Textures) Len() int {
	return len(t.entries)
}

// Resolve loads and caches a texture by stem. Returns nil if the stem
// is not indexed or the file fails to decode.
func (t *Textures) Resolve(stem string) *image.NRGBA {
	key := strings.ToLower(stem)
	path, ok := t.entries[key]
	if !ok {
		return nil
	}

	t.mu.RLock()
	if img, exists := t.images[path]; exists {
		t.mu.RUnlock()
		return img
	}
	t.mu.RUnlock()

	img, _ := loadTexture(path)

	t.mu.Lock()
	if cached, exists := t.images[path]; exists {
		t.mu.Unlock()
		return cached
	}
	t.images[path] = img
	t.mu.Unlock()
	return img
}

// loadTexture decodes a texture file into NRGBA. TGA decoding comes
// from the registered tga decoder, JPEG/PNG from the stdlib decoders.
func loadTexture(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("material: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("material: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any decoded image to NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// Opaque formats: draw, then force full alpha.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
