package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"necklace-renderer/internal/geometry"
	"necklace-renderer/internal/scene"
)

// Loader resolves charm model files under a model directory, with the
// procedural stand-in as the single fallback path: any load failure
// (missing file, parse error, empty dir config) falls back silently to
// geometry.Charm for the charm's category.
//
// Loaded meshes are cached per path; safe for concurrent render workers.
type Loader struct {
	dir string

	mu    sync.RWMutex
	cache map[string]geometry.Mesh
}

// NewLoader creates a loader rooted at dir. An empty dir means every
// charm uses procedural geometry.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, cache: make(map[string]geometry.Mesh)}
}

// Mesh returns the mesh for a charm, already scaled by the charm's
// relative size. The returned warning is non-empty when an external
// model was declared but the procedural fallback was used instead;
// callers decide whether to surface it.
func (l *Loader) Mesh(c scene.Charm) (geometry.Mesh, string) {
	if c.Model == "" || l.dir == "" {
		return geometry.Charm(c.Category, c.Size), ""
	}

	path := filepath.Join(l.dir, c.Model)
	m, err := l.load(path)
	if err != nil {
		return geometry.Charm(c.Category, c.Size),
			fmt.Sprintf("charm %s: %v (using procedural stand-in)", c.ID, err)
	}
	return geometry.FitCharm(m, c.Size), ""
}

func (l *Loader) load(path string) (geometry.Mesh, error) {
	l.mu.RLock()
	if m, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return m, nil
	}
	l.mu.RUnlock()

	if _, err := os.Stat(path); err != nil {
		return geometry.Mesh{}, fmt.Errorf("model: stat %s: %w", path, err)
	}
	m, err := Parse(path)
	if err != nil {
		return geometry.Mesh{}, err
	}

	l.mu.Lock()
	l.cache[path] = m
	l.mu.Unlock()
	return m, nil
}
