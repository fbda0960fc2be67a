// Package palette resolves semantic colour names and shade indices to
// concrete hex colours.
//
// A Palette is built once (from the embedded default table or a palette file)
// and is read-only afterwards, so it can be shared freely between engines and
// goroutines.
package palette

import (
	"sort"
	"strconv"
)

// Color is a semantic colour token: a named hue or one of the achromatic
// aliases Black and White.
type Color string

const (
	Slate   Color = "slate"
	Gray    Color = "gray"
	Zinc    Color = "zinc"
	Neutral Color = "neutral"
	Stone   Color = "stone"
	Red     Color = "red"
	Orange  Color = "orange"
	Amber   Color = "amber"
	Yellow  Color = "yellow"
	Lime    Color = "lime"
	Green   Color = "green"
	Emerald Color = "emerald"
	Teal    Color = "teal"
	Cyan    Color = "cyan"
	Sky     Color = "sky"
	Blue    Color = "blue"
	Indigo  Color = "indigo"
	Violet  Color = "violet"
	Purple  Color = "purple"
	Fuchsia Color = "fuchsia"
	Pink    Color = "pink"
	Rose    Color = "rose"

	Black Color = "black"
	White Color = "white"
)

// Achromatic reports whether c is one of the aliases backed by the
// grayscale table.
func (c Color) Achromatic() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	return string(c)
}

// Shade is a position in a colour ramp, lightest (50) to darkest (950).
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

// DefaultShade is used when a requested shade is missing from a ramp.
const DefaultShade = Shade500

// Shades lists every supported shade in ramp order.
var Shades = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// Valid reports whether s is one of Shades.
func (s Shade) Valid() bool {
	for _, known := range Shades {
		if s == known {
			return true
		}
	}
	return false
}

func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// Ramp holds the concrete colours of one hue.
type Ramp struct {
	// Default is used when neither the requested shade nor DefaultShade exist.
	Default string
	Shades  map[Shade]string
}

func (r Ramp) clone() Ramp {
	shades := make(map[Shade]string, len(r.Shades))
	for shade, value := range r.Shades {
		shades[shade] = value
	}
	return Ramp{Default: r.Default, Shades: shades}
}

// Palette maps semantic colours to ramps. The zero value resolves every
// lookup to Fallback.
type Palette struct {
	fallback  string
	grayscale Ramp
	hues      map[Color]Ramp
}

// FallbackColor is the palette-wide last resort when a palette does not
// declare its own.
const FallbackColor = "#737373"

// New builds a palette from explicit ramps. The maps are copied.
func New(fallback string, grayscale Ramp, hues map[Color]Ramp) *Palette {
	if fallback == "" {
		fallback = FallbackColor
	}
	copied := make(map[Color]Ramp, len(hues))
	for color, ramp := range hues {
		copied[color] = ramp.clone()
	}
	return &Palette{fallback: fallback, grayscale: grayscale.clone(), hues: copied}
}

// Resolve returns the concrete colour for color at shade. It never fails:
// a missing shade falls back to 500, then to the ramp default, then to the
// palette fallback. Black and White read the grayscale table, which runs
// from black at 50 to white at 950.
func (p *Palette) Resolve(color Color, shade Shade) string {
	if p == nil {
		return FallbackColor
	}
	ramp, ok := p.ramp(color)
	if !ok {
		return p.fallback
	}
	if value, ok := ramp.Shades[shade]; ok && value != "" {
		return value
	}
	if value, ok := ramp.Shades[DefaultShade]; ok && value != "" {
		return value
	}
	if ramp.Default != "" {
		return ramp.Default
	}
	return p.fallback
}

// Has reports whether color is known to the palette.
func (p *Palette) Has(color Color) bool {
	if p == nil {
		return false
	}
	_, ok := p.ramp(color)
	return ok
}

// Fallback returns the palette-wide default colour.
func (p *Palette) Fallback() string {
	if p == nil {
		return FallbackColor
	}
	return p.fallback
}

// Colors lists the hues of the palette in name order, followed by the
// achromatic aliases.
func (p *Palette) Colors() []Color {
	if p == nil {
		return nil
	}
	colors := make([]Color, 0, len(p.hues)+2)
	for color := range p.hues {
		colors = append(colors, color)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	if len(p.grayscale.Shades) > 0 {
		colors = append(colors, Black, White)
	}
	return colors
}

// Overlay returns a new palette with the ramps of top layered over p.
// Shades present in top replace the matching shades of p; everything else
// is inherited.
func (p *Palette) Overlay(top *Palette) *Palette {
	if p == nil {
		return top
	}
	if top == nil {
		return p
	}
	merged := New(p.fallback, p.grayscale, p.hues)
	if top.fallback != "" && top.fallback != FallbackColor {
		merged.fallback = top.fallback
	}
	merged.grayscale = overlayRamp(merged.grayscale, top.grayscale)
	for color, ramp := range top.hues {
		merged.hues[color] = overlayRamp(merged.hues[color], ramp)
	}
	return merged
}

func overlayRamp(base, top Ramp) Ramp {
	out := base.clone()
	if top.Default != "" {
		out.Default = top.Default
	}
	for shade, value := range top.Shades {
		out.Shades[shade] = value
	}
	return out
}

func (p *Palette) ramp(color Color) (Ramp, bool) {
	if color.Achromatic() {
		return p.grayscale, len(p.grayscale.Shades) > 0 || p.grayscale.Default != ""
	}
	ramp, ok := p.hues[color]
	return ramp, ok
}
