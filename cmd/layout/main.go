package main

import (
	"flag"
	"fmt"
	"os"

	"necklace-renderer/internal/layout"
	"necklace-renderer/internal/scene"
)

// Prints the resolved charm placements for every necklace in a catalog,
// for checking attachment layout without rendering.
func main() {
	catalog := flag.String("catalog", "", "Path to necklace catalog JSON (default: built-in demo catalog)")
	only := flag.String("only", "", "Inspect only the necklace with this ID")
	flag.Parse()

	var necklaces []scene.Necklace
	if *catalog != "" {
		var err error
		necklaces, err = scene.LoadCatalog(*catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	} else {
		necklaces = scene.DemoCatalog()
	}

	for _, n := range necklaces {
		if *only != "" && n.ID != *only {
			continue
		}

		fmt.Printf("%s (%s, length %.2f, %d points)\n", n.ID, n.Base.Type, n.Base.Length, len(n.Base.Points))
		fmt.Printf("  loop radius: %.4f\n", layout.Radius(n.Base.Length))

		placements := layout.Resolve(n.Base, n.Bindings)
		for _, p := range placements {
			t := p.Transform
			fmt.Printf("  %-14s %-24s pos(%8.4f %8.4f %8.4f)  yaw %7.4f\n",
				p.PointID, p.Charm.Name, t.Position[0], t.Position[1], t.Position[2], t.Rotation[1])
		}

		if dropped := len(n.Bindings) - len(placements); dropped > 0 {
			fmt.Printf("  unresolved bindings: %d\n", dropped)
		}
		for _, r := range scene.CheckCapacity(n) {
			fmt.Printf("  oversize: charm %s (%.2f) on point %s (max %.2f)\n",
				r.CharmID, r.CharmSize, r.PointID, r.MaxSize)
		}
		fmt.Println()
	}
}
