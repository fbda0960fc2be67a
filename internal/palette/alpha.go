package palette

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the treatment value for an unpainted slot.
const Transparent = "transparent"

// Alpha is an opacity written as the two hex digits appended to a
// six-digit colour, e.g. "10" for #7c3aed10.
type Alpha string

const (
	// Opaque appends nothing.
	Opaque  Alpha = ""
	Alpha10 Alpha = "10"
	Alpha20 Alpha = "20"
	Alpha30 Alpha = "30"
	Alpha40 Alpha = "40"
	Alpha50 Alpha = "50"
	Alpha80 Alpha = "80"
)

// Byte returns the 8-bit alpha value, 0xff for Opaque or malformed values.
func (a Alpha) Byte() uint8 {
	if a == Opaque {
		return 0xff
	}
	v, err := strconv.ParseUint(string(a), 16, 8)
	if err != nil || len(a) != 2 {
		return 0xff
	}
	return uint8(v)
}

// Fraction returns the opacity in [0, 1].
func (a Alpha) Fraction() float64 {
	return float64(a.Byte()) / 255
}

// WithAlpha appends a to a six-digit hex colour. It is a string operation so
// the result matches the token exactly (#7c3aed + 10 = #7c3aed10).
// Transparent and already-translucent values are returned unchanged.
func WithAlpha(hex string, a Alpha) string {
	if a == Opaque || hex == Transparent || len(hex) != 7 {
		return hex
	}
	return hex + string(a)
}

// SplitAlpha separates an eight-digit colour into its six-digit base and
// alpha suffix. Six-digit colours report Opaque.
func SplitAlpha(value string) (string, Alpha) {
	if len(value) == 9 && strings.HasPrefix(value, "#") {
		return value[:7], Alpha(value[7:])
	}
	return value, Opaque
}

// NRGBA converts a treatment colour (#rrggbb, #rrggbbaa or Transparent) to a
// non-premultiplied colour.
func NRGBA(value string) (color.NRGBA, bool) {
	if value == Transparent {
		return color.NRGBA{}, true
	}
	base, alpha := SplitAlpha(value)
	c, err := colorful.Hex(base)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha.Byte()}, true
}

// Flatten composites a treatment colour over an opaque surface and returns an
// opaque six-digit hex, for outputs that cannot carry an alpha channel.
// Transparent yields the surface itself.
func Flatten(value, surface string) string {
	under, err := colorful.Hex(surface)
	if err != nil {
		under = colorful.Color{}
	}
	if value == Transparent {
		return under.Hex()
	}
	base, alpha := SplitAlpha(value)
	over, err := colorful.Hex(base)
	if err != nil {
		return under.Hex()
	}
	return under.BlendRgb(over, alpha.Fraction()).Clamped().Hex()
}
