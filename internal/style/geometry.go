package style

// SizeSpec is the geometry of a control in pixels. Width is zero when the
// control sizes to its content.
type SizeSpec struct {
	Height            int `json:"height" yaml:"height"`
	Width             int `json:"width,omitempty" yaml:"width,omitempty"`
	HorizontalPadding int `json:"horizontalPadding" yaml:"horizontal_padding"`
	FontSize          int `json:"fontSize" yaml:"font_size"`
	LineHeight        int `json:"lineHeight,omitempty" yaml:"line_height,omitempty"`
	IconSize          int `json:"iconSize" yaml:"icon_size"`
	Gap               int `json:"gap,omitempty" yaml:"gap,omitempty"`
	Radius            int `json:"radius" yaml:"radius"`
}

const (
	richPadding   = 16
	richGap       = 5
	compactRadius = 6
)

var richSizes = map[Size]SizeSpec{
	SizeXS:  {Height: 28, FontSize: 12, IconSize: 14},
	SizeSM:  {Height: 36, FontSize: 14, IconSize: 18},
	SizeMD:  {Height: 48, FontSize: 16, IconSize: 22},
	SizeLG:  {Height: 56, FontSize: 18, IconSize: 26},
	SizeXL:  {Height: 64, FontSize: 20, IconSize: 30},
	Size2XL: {Height: 72, FontSize: 22, IconSize: 34},
}

// ResolveGeometry returns the button/input family geometry for size. Unknown
// sizes resolve as SizeMD. The radius is left at zero; see ResolveRadius.
func ResolveGeometry(size Size) SizeSpec {
	spec, ok := richSizes[size]
	if !ok {
		spec = richSizes[SizeMD]
	}
	spec.HorizontalPadding = richPadding
	spec.Gap = richGap
	return spec
}

type compactGeometry struct {
	spec        SizeSpec
	iconPadding int
}

var compactSizes = map[CompactSize]compactGeometry{
	CompactSizeSM: {
		spec:        SizeSpec{Height: 32, HorizontalPadding: 12, FontSize: 14, LineHeight: 20, IconSize: 18, Gap: 6},
		iconPadding: 10,
	},
	CompactSizeDefault: {
		spec:        SizeSpec{Height: 36, HorizontalPadding: 16, FontSize: 14, LineHeight: 20, IconSize: 18, Gap: 8},
		iconPadding: 12,
	},
	CompactSizeLG: {
		spec:        SizeSpec{Height: 40, HorizontalPadding: 24, FontSize: 16, LineHeight: 24, IconSize: 22, Gap: 8},
		iconPadding: 16,
	},
	CompactSizeIcon: {
		spec: SizeSpec{Height: 36, Width: 36, FontSize: 14, LineHeight: 20, IconSize: 18},
	},
}

// ResolveCompactGeometry returns the compact family geometry. An icon-only
// rendering (icon present, label absent) uses the tighter padding of its size.
// Unknown sizes resolve as CompactSizeDefault.
func ResolveCompactGeometry(size CompactSize, hasIcon, hasLabel bool) SizeSpec {
	g, ok := compactSizes[size]
	if !ok {
		g = compactSizes[CompactSizeDefault]
	}
	spec := g.spec
	if hasIcon && !hasLabel && size != CompactSizeIcon {
		spec.HorizontalPadding = g.iconPadding
	}
	spec.Radius = compactRadius
	return spec
}

var radii = map[Radius]int{
	RadiusNone:    0,
	RadiusXXS:     4,
	RadiusXS:      6,
	RadiusSM:      8,
	RadiusMD:      12,
	RadiusDefault: 14,
	RadiusLG:      16,
	RadiusXL:      20,
	RadiusFull:    32,
}

// ResolveRadius returns the corner radius of token in pixels. Unknown tokens
// resolve as RadiusMD.
func ResolveRadius(token Radius) int {
	if px, ok := radii[token]; ok {
		return px
	}
	return radii[RadiusMD]
}
