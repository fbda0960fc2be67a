package style

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

// Family selects which control family a token belongs to. Each family has its
// own variants, shade rules and size table.
type Family string

const (
	FamilyButton  Family = "button"
	FamilyInput   Family = "input"
	FamilyCompact Family = "compact"
)

// Families lists the supported control families.
var Families = []Family{FamilyButton, FamilyInput, FamilyCompact}

// Variant is a visual treatment rule of the button and input families.
type Variant string

const (
	Solid   Variant = "solid"
	Outline Variant = "outline"
	Soft    Variant = "soft"
	Subtle  Variant = "subtle"
	Link    Variant = "link"
)

// Variants lists the button family variants. The input family supports all
// of them except Link.
var Variants = []Variant{Solid, Outline, Soft, Subtle, Link}

// CompactVariant is a variant of the compact family.
type CompactVariant string

const (
	CompactDefault     CompactVariant = "default"
	CompactDestructive CompactVariant = "destructive"
	CompactOutline     CompactVariant = "outline"
	CompactSecondary   CompactVariant = "secondary"
	CompactGhost       CompactVariant = "ghost"
	CompactLink        CompactVariant = "link"
)

// CompactVariants lists the compact family variants.
var CompactVariants = []CompactVariant{
	CompactDefault, CompactDestructive, CompactOutline, CompactSecondary, CompactGhost, CompactLink,
}

// Size is a size token of the button and input families.
type Size string

const (
	SizeXS  Size = "xs"
	SizeSM  Size = "sm"
	SizeMD  Size = "md"
	SizeLG  Size = "lg"
	SizeXL  Size = "xl"
	Size2XL Size = "2xl"
)

// Sizes lists the button and input family sizes, smallest first.
var Sizes = []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL, Size2XL}

// CompactSize is a size token of the compact family.
type CompactSize string

const (
	CompactSizeSM      CompactSize = "sm"
	CompactSizeDefault CompactSize = "default"
	CompactSizeLG      CompactSize = "lg"
	CompactSizeIcon    CompactSize = "icon"
)

// CompactSizes lists the compact family sizes.
var CompactSizes = []CompactSize{CompactSizeSM, CompactSizeDefault, CompactSizeLG, CompactSizeIcon}

// Radius is a corner radius token.
type Radius string

const (
	RadiusNone    Radius = "none"
	RadiusXXS     Radius = "xxs"
	RadiusXS      Radius = "xs"
	RadiusSM      Radius = "sm"
	RadiusMD      Radius = "md"
	RadiusDefault Radius = "default"
	RadiusLG      Radius = "lg"
	RadiusXL      Radius = "xl"
	RadiusFull    Radius = "full"
)

// Radii lists the radius tokens, smallest first.
var Radii = []Radius{
	RadiusNone, RadiusXXS, RadiusXS, RadiusSM, RadiusMD, RadiusDefault, RadiusLG, RadiusXL, RadiusFull,
}

// Suggest returns the candidate closest to value by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(value string, candidates []string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || len(candidates) == 0 {
		return ""
	}
	closest := lo.MinBy(candidates, func(a string, b string) bool {
		return levenshtein.Distance(value, a) < levenshtein.Distance(value, b)
	})
	if levenshtein.Distance(value, closest) > 2 {
		return ""
	}
	return closest
}

func parseToken[T ~string](kind, raw string, known []T, fallback T) (T, error) {
	value := T(strings.ToLower(strings.TrimSpace(raw)))
	if lo.Contains(known, value) {
		return value, nil
	}
	names := lo.Map(known, func(t T, _ int) string { return string(t) })
	return fallback, tkerrors.NewTokenError(kind, raw, string(fallback), Suggest(raw, names))
}

// ParseFamily parses a family token, defaulting to FamilyButton.
func ParseFamily(raw string) (Family, error) {
	return parseToken("family", raw, Families, FamilyButton)
}

// ParseVariant parses a variant of family, falling back to the family default.
func ParseVariant(family Family, raw string) (Variant, error) {
	spec := specFor(family)
	return parseToken("variant", raw, spec.variants, spec.defaultVariant)
}

// ParseCompactVariant parses a compact variant, falling back to CompactDefault.
func ParseCompactVariant(raw string) (CompactVariant, error) {
	return parseToken("variant", raw, CompactVariants, CompactDefault)
}

// ParseSize parses a button/input size, falling back to SizeMD.
func ParseSize(raw string) (Size, error) {
	return parseToken("size", raw, Sizes, SizeMD)
}

// ParseCompactSize parses a compact size, falling back to CompactSizeDefault.
func ParseCompactSize(raw string) (CompactSize, error) {
	return parseToken("size", raw, CompactSizes, CompactSizeDefault)
}

// ParseRadius parses a radius token, falling back to fallback.
func ParseRadius(raw string, fallback Radius) (Radius, error) {
	return parseToken("radius", raw, Radii, fallback)
}

// ParseColor parses a colour token against the palette, falling back to the
// family default colour.
func ParseColor(family Family, raw string, pal *palette.Palette) (palette.Color, error) {
	return parseToken("color", raw, pal.Colors(), specFor(family).defaultColor)
}
