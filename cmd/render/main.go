package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"necklace-renderer/internal/batch"
	"necklace-renderer/internal/config"
	"necklace-renderer/internal/material"
	"necklace-renderer/internal/model"
	"necklace-renderer/internal/raster"
	"necklace-renderer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	catalog := flag.String("catalog", "", "Path to necklace catalog JSON (default: built-in demo catalog)")
	only := flag.String("only", "", "Render only the necklace with this ID")
	testN := flag.Int("test", 0, "Render only first N necklaces for testing")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	framing := flag.String("framing", "", "Camera framing: front, three-quarter, top")
	rig := flag.String("rig", "", "Lighting rig: studio, boutique, dramatic")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		CatalogPath: *catalog,
		OutputDir:   *outputDir,
		Quality:     *quality,
		Workers:     *workers,
		Framing:     *framing,
		Rig:         *rig,
	})

	var necklaces []scene.Necklace
	if cfg.CatalogPath != "" {
		var err error
		necklaces, err = scene.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	} else {
		necklaces = scene.DemoCatalog()
	}

	if *only != "" {
		var filtered []scene.Necklace
		for _, n := range necklaces {
			if n.ID == *only {
				filtered = append(filtered, n)
			}
		}
		necklaces = filtered
	}
	if *testN > 0 && *testN < len(necklaces) {
		necklaces = necklaces[:*testN]
	}

	if len(necklaces) == 0 {
		fmt.Println("No necklaces to render.")
		os.Exit(0)
	}

	// Oversize bindings render anyway; report them up front.
	for _, n := range necklaces {
		for _, r := range scene.CheckCapacity(n) {
			fmt.Printf("Note: %s: charm %s (size %.2f) exceeds point %s capacity %.2f\n",
				r.NecklaceID, r.CharmID, r.CharmSize, r.PointID, r.MaxSize)
		}
	}

	textures := material.ScanTextures(cfg.TextureDir)
	if textures.Len() > 0 {
		fmt.Printf("Textures: %d indexed\n", textures.Len())
	}

	fmt.Printf("Necklace Renderer → WebP\n")
	fmt.Printf("Necklaces: %d, Workers: %d, Framing: %s, Rig: %s\n",
		len(necklaces), cfg.Workers, cfg.Framing, cfg.Rig)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Models:    model.NewLoader(cfg.ModelDir),
		Textures:  textures,
		Render: raster.Options{
			Framing:     cfg.Framing,
			Rig:         cfg.Rig,
			Perspective: cfg.Perspective,
			FOV:         cfg.FOV,
		},
		RenderSize:  cfg.RenderSize,
		WebPQuality: cfg.WebPQuality,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, necklaces)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		for _, w := range r.Warnings {
			fmt.Printf("Warning: %s: %s\n", r.ID, w)
		}
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(necklaces))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.ID, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, necklaces); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
