package batch

import (
	"encoding/json"
	"os"

	"necklace-renderer/internal/scene"
)

// ManifestEntry describes one rendered necklace in the output manifest.
type ManifestEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BaseType    string `json:"base_type"`
	Charms      int    `json:"charms"`
	Image       string `json:"image"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, necklaces []scene.Necklace) error {
	entries := make([]ManifestEntry, len(necklaces))
	for i, n := range necklaces {
		entries[i] = ManifestEntry{
			ID:          n.ID,
			Name:        n.Name,
			Description: n.Description,
			BaseType:    n.Base.Type,
			Charms:      len(n.Bindings),
			Image:       n.ID + ".webp",
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
