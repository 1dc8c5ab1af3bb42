package scene

import "necklace-renderer/internal/mathutil"

// Base geometry types. Each selects a different procedural loop mesh.
const (
	BaseChain  = "chain"
	BaseCord   = "cord"
	BaseBeaded = "beaded"
	BaseWire   = "wire"
)

// Attachment point categories.
const (
	PointLink        = "link"
	PointClasp       = "clasp"
	PointCenterpiece = "centerpiece"
	PointSegment     = "segment"
)

// Charm categories. Each selects a different procedural stand-in mesh
// when no external model file is available.
const (
	CharmPendant  = "pendant"
	CharmBead     = "bead"
	CharmGemstone = "gemstone"
	CharmOrnament = "ornament"
)

// validBaseTypes is the set of recognized base geometry values.
var validBaseTypes = map[string]bool{
	BaseChain:  true,
	BaseCord:   true,
	BaseBeaded: true,
	BaseWire:   true,
}

// AttachmentPoint is a named slot on a necklace loop where a charm may
// be rendered. The declared Position/Rotation are layout hints from the
// authoring side; the layout resolver recomputes both from the point's
// loop index and ignores the hints.
type AttachmentPoint struct {
	ID           string         `json:"id"`
	Position     mathutil.Vec3  `json:"position"`
	Rotation     mathutil.Vec3  `json:"rotation"`
	Category     string         `json:"category"`
	MaxCharmSize float64        `json:"max_charm_size"`
	Occupied     bool           `json:"occupied"` // advisory only, never enforced
}

// Charm is one attachable decoration.
type Charm struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Size     float64 `json:"size"`   // relative scale, expected range 0.1–2.0
	Weight   float64 `json:"weight"` // sway amplitude only, not physics
	Material string  `json:"material"`
	Fits     string  `json:"fits"`       // compatible point category, not validated
	Model    string  `json:"model_file"` // optional external model, procedural fallback when absent
}

// Binding associates one charm with one attachment point. When the
// custom transform fields are set they replace the computed attachment
// transform verbatim.
type Binding struct {
	PointID        string         `json:"attachment_point_id"`
	Charm          Charm          `json:"charm"`
	CustomPosition *mathutil.Vec3 `json:"custom_position,omitempty"`
	CustomRotation *mathutil.Vec3 `json:"custom_rotation,omitempty"`
}

// Base is the closed loop structure charms attach to.
// Length is the loop circumference and must be positive; the catalog
// loader rejects non-positive lengths so downstream code can assume it.
type Base struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Length   float64           `json:"length"`
	Material string            `json:"material"`
	Points   []AttachmentPoint `json:"attachment_points"`
}

// Necklace is a complete renderable configuration.
type Necklace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Base        Base      `json:"base"`
	Bindings    []Binding `json:"bindings"`
}

// Point returns the attachment point with the given ID and its index
// within the base's ordered point list, or ok=false if absent.
func (b Base) Point(id string) (AttachmentPoint, int, bool) {
	for i, p := range b.Points {
		if p.ID == id {
			return p, i, true
		}
	}
	return AttachmentPoint{}, 0, false
}
