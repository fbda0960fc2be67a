package style

import (
	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// Button family: a single accent shade C per colour and mode.
//
//	solid   C       / C           / ink
//	outline none    / C           / C
//	soft    C+wash  / none        / C
//	subtle  C+wash  / C           / C
//	link    none    / none        / C
var buttonSpec = familySpec{
	family:   FamilyButton,
	variants: []Variant{Solid, Outline, Soft, Subtle, Link},
	recipes: map[Variant]recipe{
		Solid:   {background: solid(toneAccent), border: solid(toneAccent), text: solid(toneInk), borderWidth: 1},
		Outline: {background: transparent, border: solid(toneAccent), text: solid(toneAccent), borderWidth: 1},
		Soft:    {background: washed(toneAccent), border: transparent, text: solid(toneAccent), borderWidth: 0},
		Subtle:  {background: washed(toneAccent), border: solid(toneAccent), text: solid(toneAccent), borderWidth: 1},
		Link:    {background: transparent, border: transparent, text: solid(toneAccent), borderWidth: 0},
	},
	rules: map[colorClass]map[theme.Mode]shadeRule{
		classHue: {
			theme.Light: {
				shades: map[tone]palette.Shade{toneAccent: palette.Shade600, toneInk: palette.Shade50},
				washes: map[tone]palette.Alpha{toneAccent: palette.Alpha10},
			},
			theme.Dark: {
				shades: map[tone]palette.Shade{toneAccent: palette.Shade500, toneInk: palette.Shade950},
				washes: map[tone]palette.Alpha{toneAccent: palette.Alpha20},
			},
		},
		classBlack: sameForModes(shadeRule{
			shades: map[tone]palette.Shade{toneAccent: palette.Shade50, toneInk: palette.Shade950},
			washes: map[tone]palette.Alpha{toneAccent: achromaticWash},
		}),
		classWhite: sameForModes(shadeRule{
			shades: map[tone]palette.Shade{toneAccent: palette.Shade950, toneInk: palette.Shade50},
			washes: map[tone]palette.Alpha{toneAccent: achromaticWash},
		}),
	},
	defaultColor:   palette.Blue,
	defaultVariant: Outline,
}

// Input family: separate surface, tint, line, ink and placeholder shades.
var inputSpec = familySpec{
	family:   FamilyInput,
	variants: []Variant{Solid, Outline, Soft, Subtle},
	recipes: map[Variant]recipe{
		Solid:   {background: solid(toneSurface), border: solid(toneLine), text: solid(toneInk), placeholder: solid(toneHint), borderWidth: 1},
		Outline: {background: transparent, border: solid(toneLine), text: solid(toneInk), placeholder: solid(toneHint), borderWidth: 1},
		Soft:    {background: washed(toneTint), border: transparent, text: solid(toneInk), placeholder: solid(toneHint), borderWidth: 0},
		Subtle:  {background: washed(toneTint), border: washed(toneLine), text: solid(toneInk), placeholder: solid(toneHint), borderWidth: 1},
	},
	rules: map[colorClass]map[theme.Mode]shadeRule{
		classHue: {
			theme.Light: {
				shades: map[tone]palette.Shade{
					toneSurface: palette.Shade50,
					toneTint:    palette.Shade100,
					toneLine:    palette.Shade300,
					toneInk:     palette.Shade950,
					toneHint:    palette.Shade500,
				},
				washes: map[tone]palette.Alpha{toneTint: palette.Alpha30, toneLine: palette.Alpha50},
			},
			theme.Dark: {
				shades: map[tone]palette.Shade{
					toneSurface: palette.Shade100,
					toneTint:    palette.Shade500,
					toneLine:    palette.Shade400,
					toneInk:     palette.Shade50,
					toneHint:    palette.Shade300,
				},
				washes: map[tone]palette.Alpha{toneTint: palette.Alpha20, toneLine: palette.Alpha40},
			},
		},
		classBlack: sameForModes(shadeRule{
			shades: map[tone]palette.Shade{
				toneSurface: palette.Shade50,
				toneTint:    palette.Shade50,
				toneLine:    palette.Shade200,
				toneInk:     palette.Shade950,
				toneHint:    palette.Shade400,
			},
			washes: map[tone]palette.Alpha{toneTint: achromaticWash, toneLine: achromaticLineWash},
		}),
		classWhite: sameForModes(shadeRule{
			shades: map[tone]palette.Shade{
				toneSurface: palette.Shade950,
				toneTint:    palette.Shade950,
				toneLine:    palette.Shade800,
				toneInk:     palette.Shade50,
				toneHint:    palette.Shade600,
			},
			washes: map[tone]palette.Alpha{toneTint: achromaticWash, toneLine: achromaticLineWash},
		}),
	},
	defaultColor:   palette.Gray,
	defaultVariant: Outline,
}

// Black and white keep one wash in both modes. Theme invariance takes
// precedence over the per-mode soft suffix (10 light, 20 dark) hues follow.
const (
	achromaticWash     = palette.Alpha20
	achromaticLineWash = palette.Alpha40
)

var (
	buttonPlans = buildPlans(buttonSpec)
	inputPlans  = buildPlans(inputSpec)
)

func specFor(family Family) familySpec {
	if family == FamilyInput {
		return inputSpec
	}
	return buttonSpec
}

func plansFor(family Family) planTable {
	if family == FamilyInput {
		return inputPlans
	}
	return buttonPlans
}
