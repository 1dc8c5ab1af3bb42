package scene

import (
	"fmt"

	"github.com/google/uuid"

	"necklace-renderer/internal/mathutil"
)

func vec3(x, y, z float64) mathutil.Vec3 {
	return mathutil.Vec3{x, y, z}
}

// DemoCatalog returns the built-in demo necklaces used when no catalog
// file is supplied. Attachment point IDs are stable (tests and custom
// catalogs reference them); charm instance IDs are generated.
func DemoCatalog() []Necklace {
	return []Necklace{
		classicChain(),
		beadedStrand(),
		wireChoker(),
	}
}

// classicChain is the default demo: a length-8 chain with two points,
// a centerpiece pendant and a side gemstone.
func classicChain() Necklace {
	return Necklace{
		ID:          "classic-chain",
		Name:        "Classic Gold Chain",
		Description: "Gold chain with a teardrop pendant",
		Base: Base{
			ID:       "classic-chain-base",
			Type:     BaseChain,
			Length:   8,
			Material: "gold",
			Points: []AttachmentPoint{
				{ID: "center", Category: PointCenterpiece, MaxCharmSize: 2.0},
				{ID: "side", Category: PointLink, MaxCharmSize: 0.8},
			},
		},
		Bindings: []Binding{
			{
				PointID: "center",
				Charm: Charm{
					ID:       uuid.NewString(),
					Name:     "Teardrop Pendant",
					Category: CharmPendant,
					Size:     1.2,
					Weight:   0.8,
					Material: "gold",
					Fits:     PointCenterpiece,
				},
			},
			{
				PointID: "side",
				Charm: Charm{
					ID:       uuid.NewString(),
					Name:     "Ruby Accent",
					Category: CharmGemstone,
					Size:     0.5,
					Weight:   0.3,
					Material: "ruby",
					Fits:     PointLink,
				},
			},
		},
	}
}

// beadedStrand spreads pearl beads over eight segment points.
func beadedStrand() Necklace {
	const n = 8
	points := make([]AttachmentPoint, n)
	bindings := make([]Binding, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("seg-%d", i)
		points[i] = AttachmentPoint{ID: id, Category: PointSegment, MaxCharmSize: 0.6}
		bindings[i] = Binding{
			PointID: id,
			Charm: Charm{
				ID:       uuid.NewString(),
				Name:     fmt.Sprintf("Pearl %d", i+1),
				Category: CharmBead,
				Size:     0.45,
				Weight:   0.2,
				Material: "pearl",
				Fits:     PointSegment,
			},
		}
	}
	return Necklace{
		ID:          "pearl-strand",
		Name:        "Pearl Strand",
		Description: "Silk cord with evenly spaced pearls",
		Base: Base{
			ID:       "pearl-strand-base",
			Type:     BaseBeaded,
			Length:   10,
			Material: "silk",
			Points:   points,
		},
		Bindings: bindings,
	}
}

// wireChoker demonstrates custom transform overrides: the ornament is
// pinned below the loop instead of at its computed point.
func wireChoker() Necklace {
	drop := vec3(0, -1.6, 0)
	flat := vec3(0, 0, 0)
	return Necklace{
		ID:          "wire-choker",
		Name:        "Silver Wire Choker",
		Description: "Stiff wire loop with a dropped ornament",
		Base: Base{
			ID:       "wire-choker-base",
			Type:     BaseWire,
			Length:   7,
			Material: "silver",
			Points: []AttachmentPoint{
				{ID: "front", Category: PointCenterpiece, MaxCharmSize: 1.5},
				{ID: "clasp", Category: PointClasp, MaxCharmSize: 0.4, Occupied: true},
			},
		},
		Bindings: []Binding{
			{
				PointID: "front",
				Charm: Charm{
					ID:       uuid.NewString(),
					Name:     "Filigree Drop",
					Category: CharmOrnament,
					Size:     1.0,
					Weight:   1.1,
					Material: "silver",
					Fits:     PointCenterpiece,
				},
				CustomPosition: &drop,
				CustomRotation: &flat,
			},
		},
	}
}
