package raster

import (
	"image"

	"necklace-renderer/internal/camera"
	"necklace-renderer/internal/geometry"
	"necklace-renderer/internal/layout"
	"necklace-renderer/internal/material"
	"necklace-renderer/internal/mathutil"
	"necklace-renderer/internal/model"
	"necklace-renderer/internal/scene"
)

// Options selects framing and lighting for a render pass.
type Options struct {
	Framing     string
	Rig         string
	Perspective bool
	FOV         float64
}

// glowExposure dims the additive gemstone pass relative to the base pass.
const glowExposure = 0.35

// BuildScene assembles the renderable meshes for a necklace: the
// procedural base loop plus one mesh per resolved charm placement.
// Returned warnings report charms that fell back to procedural
// stand-ins; bindings the resolver dropped produce no mesh and no
// warning.
func BuildScene(n scene.Necklace, loader *model.Loader) ([]geometry.Mesh, []string) {
	var warnings []string

	loop := geometry.Loop(n.Base)
	loop.Material = n.Base.Material
	meshes := []geometry.Mesh{loop}

	for _, p := range layout.Resolve(n.Base, n.Bindings) {
		m, warn := loader.Mesh(p.Charm)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		m = geometry.Transform(m, mathutil.EulerZYX(p.Transform.Rotation), 1, p.Transform.Position)
		m.Material = p.Charm.Material
		meshes = append(meshes, m)
	}
	return meshes, warnings
}

// RenderNecklace renders a necklace to an NRGBA image of
// size*supersample pixels square. Callers downsample afterwards.
func RenderNecklace(n scene.Necklace, loader *model.Loader, textures material.Resolver, opts Options, size, supersample int) (*image.NRGBA, []string) {
	meshes, warnings := BuildScene(n, loader)

	renderSize := size * supersample
	view := camera.ViewMatrix(opts.Framing)

	center, scale, ok := camera.Fit(meshes, view, renderSize, 16*supersample)
	if !ok {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize)), warnings
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	rig := Rig(opts.Rig)

	for _, mesh := range meshes {
		if len(mesh.Verts) == 0 {
			continue
		}
		px, py, pz := camera.Project(mesh.Verts, view, center, scale, renderSize, opts.Perspective, opts.FOV)

		preset := material.Lookup(mesh.Material)
		lc := rig.ForMaterial(preset)

		var tex *image.NRGBA
		if textures != nil && preset.Texture != "" {
			tex = textures.Resolve(preset.Texture)
		}

		for _, tri := range mesh.Tris {
			RasterizeTriangle(fb, px, py, pz, mesh.UVs, tri.VI, tri.TI, tex,
				preset.R, preset.G, preset.B, 255, &lc)
		}

		if preset.Glow {
			glow := lc
			glow.Exposure *= glowExposure
			for _, tri := range mesh.Tris {
				RasterizeTriangleAdditive(fb, px, py, pz, mesh.UVs, tri.VI, tri.TI, tex,
					preset.R, preset.G, preset.B, 255, &glow)
			}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img, warnings
}
