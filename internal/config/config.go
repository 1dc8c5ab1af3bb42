package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"necklace-renderer/internal/camera"
	"necklace-renderer/internal/raster"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	CatalogPath string `json:"catalog"`
	ModelDir    string `json:"model_dir"`
	TextureDir  string `json:"texture_dir"`
	OutputDir   string `json:"output_dir"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	WebPQuality int     `json:"webp_quality"`
	Workers     int     `json:"workers"`
	Framing     string  `json:"framing"`
	Rig         string  `json:"rig"`
	Perspective bool    `json:"perspective"`
	FOV         float64 `json:"fov"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	CatalogPath string
	OutputDir   string
	Quality     int
	Workers     int
	Framing     string
	Rig         string
}

// Resolve applies CLI flag overrides, then fills any remaining empty
// fields with defaults. Relative asset paths resolve against the
// catalog's directory when a catalog file is in use.
func (c *Config) Resolve(flags Flags) {
	if flags.CatalogPath != "" {
		c.CatalogPath = flags.CatalogPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Framing != "" {
		c.Framing = flags.Framing
	}
	if flags.Rig != "" {
		c.Rig = flags.Rig
	}

	if c.CatalogPath != "" {
		base := filepath.Dir(c.CatalogPath)
		if c.ModelDir != "" && !filepath.IsAbs(c.ModelDir) {
			c.ModelDir = filepath.Join(base, c.ModelDir)
		}
		if c.TextureDir != "" && !filepath.IsAbs(c.TextureDir) {
			c.TextureDir = filepath.Join(base, c.TextureDir)
		}
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Framing == "" {
		c.Framing = camera.FramingThreeQuarter
	}
	if c.Rig == "" {
		c.Rig = raster.RigStudio
	}
	if c.FOV <= 0 {
		c.FOV = camera.DefaultFOV
	}
}
