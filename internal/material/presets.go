package material

// Preset maps a material descriptor to the surface parameters the
// rasterizer consumes.
type Preset struct {
	Name     string
	R, G, B  uint8   // base color, sRGB
	SpecInt  float64 // specular intensity
	SpecPow  float64 // specular exponent
	Glow     bool    // additive sparkle pass (gemstones)
	Texture  string  // optional texture stem resolved against the texture dir
}

// presets is the built-in material table. Lookup of an unknown name
// falls back to "steel".
var presets = map[string]Preset{
	"gold":      {Name: "gold", R: 212, G: 175, B: 55, SpecInt: 0.95, SpecPow: 28},
	"rose-gold": {Name: "rose-gold", R: 222, G: 165, B: 138, SpecInt: 0.85, SpecPow: 26},
	"silver":    {Name: "silver", R: 205, G: 208, B: 214, SpecInt: 1.0, SpecPow: 34},
	"steel":     {Name: "steel", R: 160, G: 160, B: 170, SpecInt: 0.6, SpecPow: 18},
	"pearl":     {Name: "pearl", R: 238, G: 232, B: 222, SpecInt: 0.5, SpecPow: 10, Texture: "pearl"},
	"onyx":      {Name: "onyx", R: 38, G: 38, B: 42, SpecInt: 0.9, SpecPow: 40},
	"leather":   {Name: "leather", R: 92, G: 62, B: 40, SpecInt: 0.15, SpecPow: 6, Texture: "leather"},
	"silk":      {Name: "silk", R: 214, G: 198, B: 176, SpecInt: 0.25, SpecPow: 8, Texture: "silk"},
	"ruby":      {Name: "ruby", R: 190, G: 26, B: 50, SpecInt: 1.1, SpecPow: 44, Glow: true},
	"emerald":   {Name: "emerald", R: 24, G: 158, B: 94, SpecInt: 1.1, SpecPow: 44, Glow: true},
	"sapphire":  {Name: "sapphire", R: 28, G: 64, B: 172, SpecInt: 1.1, SpecPow: 44, Glow: true},
	"amethyst":  {Name: "amethyst", R: 134, G: 70, B: 178, SpecInt: 1.05, SpecPow: 40, Glow: true},
}

// DefaultName is the fallback preset for unknown descriptors.
const DefaultName = "steel"

// Lookup returns the preset for a material descriptor, falling back to
// the default preset when the descriptor is unknown or empty.
func Lookup(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	return presets[DefaultName]
}

// Names returns the known preset names, for CLI listings.
func Names() []string {
	out := make([]string, 0, len(presets))
	for n := range presets {
		out = append(out, n)
	}
	return out
}
