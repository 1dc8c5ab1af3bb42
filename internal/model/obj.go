package model

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"necklace-renderer/internal/geometry"
)

// Parse reads a Wavefront OBJ file and returns its geometry as one
// mesh. Supports the subset charm models use: v, vt and f records,
// with faces triangulated as fans. Normals, groups and materials in
// the file are ignored.
func Parse(path string) (geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return geometry.Mesh{}, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()

	var m geometry.Mesh
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return geometry.Mesh{}, fmt.Errorf("model: %s:%d: short vertex record", path, line)
			}
			var v [3]float32
			for k := 0; k < 3; k++ {
				x, err := strconv.ParseFloat(fields[k+1], 32)
				if err != nil {
					return geometry.Mesh{}, fmt.Errorf("model: %s:%d: vertex: %w", path, line, err)
				}
				v[k] = float32(x)
			}
			m.Verts = append(m.Verts, v)
		case "vt":
			if len(fields) < 3 {
				return geometry.Mesh{}, fmt.Errorf("model: %s:%d: short texcoord record", path, line)
			}
			var uv [2]float32
			for k := 0; k < 2; k++ {
				x, err := strconv.ParseFloat(fields[k+1], 32)
				if err != nil {
					return geometry.Mesh{}, fmt.Errorf("model: %s:%d: texcoord: %w", path, line, err)
				}
				uv[k] = float32(x)
			}
			m.UVs = append(m.UVs, uv)
		case "f":
			if len(fields) < 4 {
				return geometry.Mesh{}, fmt.Errorf("model: %s:%d: face needs 3+ vertices", path, line)
			}
			corners := fields[1:]
			vis := make([]int, len(corners))
			tis := make([]int, len(corners))
			for k, c := range corners {
				vi, ti, err := parseCorner(c, len(m.Verts), len(m.UVs))
				if err != nil {
					return geometry.Mesh{}, fmt.Errorf("model: %s:%d: %w", path, line, err)
				}
				vis[k], tis[k] = vi, ti
			}
			for k := 1; k < len(corners)-1; k++ {
				m.Tris = append(m.Tris, geometry.Triangle{
					VI: [3]int{vis[0], vis[k], vis[k+1]},
					TI: [3]int{tis[0], tis[k], tis[k+1]},
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return geometry.Mesh{}, fmt.Errorf("model: read %s: %w", path, err)
	}
	if len(m.Verts) == 0 || len(m.Tris) == 0 {
		return geometry.Mesh{}, fmt.Errorf("model: %s: no renderable geometry", path)
	}

	// A mesh without texcoords still rasterizes with the material's
	// flat color; point the TI entries at a single dummy UV.
	if len(m.UVs) == 0 {
		m.UVs = [][2]float32{{0, 0}}
	}
	return m, nil
}

// parseCorner parses one face corner in v, v/vt or v/vt/vn form.
// OBJ indices are 1-based; negative indices count from the end.
func parseCorner(s string, nVerts, nUVs int) (vi, ti int, err error) {
	parts := strings.Split(s, "/")
	vi, err = objIndex(parts[0], nVerts)
	if err != nil {
		return 0, 0, fmt.Errorf("face vertex %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		ti, err = objIndex(parts[1], nUVs)
		if err != nil {
			return 0, 0, fmt.Errorf("face texcoord %q: %w", s, err)
		}
	}
	return vi, ti, nil
}

func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, n)
	}
	return i, nil
}
