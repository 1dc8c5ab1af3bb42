package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"necklace-renderer/internal/material"
	"necklace-renderer/internal/model"
	"necklace-renderer/internal/postprocess"
	"necklace-renderer/internal/raster"
	"necklace-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Models      *model.Loader
	Textures    material.Resolver
	Render      raster.Options
	RenderSize  int
	WebPQuality int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one necklace.
type Result struct {
	ID       string
	Name     string
	Success  bool
	Error    string
	Warnings []string
}

// Run renders all necklaces using a worker pool and reports progress
// every two seconds.
func Run(cfg Config, necklaces []scene.Necklace) []Result {
	total := len(necklaces)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f necklaces/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = render(cfg, necklaces[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range necklaces {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func render(cfg Config, n scene.Necklace) Result {
	res := Result{ID: n.ID, Name: n.Name}

	img, warnings := raster.RenderNecklace(n, cfg.Models, cfg.Textures, cfg.Render, cfg.RenderSize, cfg.Supersample)
	res.Warnings = warnings

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	img = postprocess.Despeckle(img, 0.002)

	outPath := filepath.Join(cfg.OutputDir, n.ID+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
