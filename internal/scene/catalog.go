package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCatalog reads a JSON catalog file and returns its necklaces.
// Each entry is validated with Validate before the catalog is accepted.
func LoadCatalog(path string) ([]Necklace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var necklaces []Necklace
	if err := json.Unmarshal(data, &necklaces); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	for i := range necklaces {
		if err := Validate(necklaces[i]); err != nil {
			return nil, fmt.Errorf("scene: %s entry %d: %w", path, i, err)
		}
	}
	return necklaces, nil
}

// Validate checks the structural preconditions the renderer relies on.
// Binding point references are NOT checked here: a dangling reference is
// a defined silent-skip case for the layout resolver, not an error.
func Validate(n Necklace) error {
	if n.ID == "" {
		return fmt.Errorf("necklace has no id")
	}
	if !validBaseTypes[n.Base.Type] {
		return fmt.Errorf("necklace %s: unknown base type %q", n.ID, n.Base.Type)
	}
	if n.Base.Length <= 0 {
		return fmt.Errorf("necklace %s: base length must be positive, got %g", n.ID, n.Base.Length)
	}
	seen := make(map[string]bool, len(n.Base.Points))
	for _, p := range n.Base.Points {
		if p.ID == "" {
			return fmt.Errorf("necklace %s: attachment point has no id", n.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("necklace %s: duplicate attachment point id %q", n.ID, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// CapacityReport lists bindings whose charm size exceeds the target
// point's declared maximum. Advisory: the resolver places these anyway,
// callers that want capacity semantics can reject them.
type CapacityReport struct {
	NecklaceID string
	PointID    string
	CharmID    string
	CharmSize  float64
	MaxSize    float64
}

// CheckCapacity returns one report per oversize binding. Bindings whose
// point reference is dangling are skipped (the resolver drops them).
func CheckCapacity(n Necklace) []CapacityReport {
	var reports []CapacityReport
	for _, b := range n.Bindings {
		p, _, ok := n.Base.Point(b.PointID)
		if !ok {
			continue
		}
		if p.MaxCharmSize > 0 && b.Charm.Size > p.MaxCharmSize {
			reports = append(reports, CapacityReport{
				NecklaceID: n.ID,
				PointID:    p.ID,
				CharmID:    b.Charm.ID,
				CharmSize:  b.Charm.Size,
				MaxSize:    p.MaxCharmSize,
			})
		}
	}
	return reports
}
