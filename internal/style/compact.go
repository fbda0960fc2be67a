package style

import (
	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// DisabledOpacity is applied to disabled and loading controls of every family.
const DisabledOpacity = 0.5

// RichPressed is the pressed feedback of the button family.
var RichPressed = Delta{Opacity: 0.8}

// Delta is the feedback applied on top of a treatment while a control is
// pressed: a reduced opacity, a replacement background, or nothing.
type Delta struct {
	Opacity    float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Background string  `json:"background,omitempty" yaml:"background,omitempty"`
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool {
	return d.Opacity == 0 && d.Background == ""
}

// Apply returns t as it looks while pressed.
func (d Delta) Apply(t Treatment) Treatment {
	if d.Background != "" {
		t.Background = d.Background
	}
	return t
}

// CompactTreatment is a compact family treatment. Compact controls use fixed
// theme colours instead of a semantic colour.
type CompactTreatment struct {
	Treatment `yaml:",inline"`
	Underline bool  `json:"underline,omitempty" yaml:"underline,omitempty"`
	Pressed   Delta `json:"pressed" yaml:"pressed"`
}

// compactColors are the fixed colours of the compact family in one mode.
type compactColors struct {
	tint          slot
	text          slot
	inverseText   slot
	hover         slot // ghost pressed background
	secondary     slot
	destructive   slot
	onDestructive slot
	outlineBorder slot
	input         slot
	inputHover    slot
}

func pin(c palette.Color, s palette.Shade) slot {
	return slot{color: c, shade: s}
}

func pinWash(c palette.Color, s palette.Shade, a palette.Alpha) slot {
	return slot{color: c, shade: s, alpha: a}
}

var (
	none   = slot{transparent: true}
	absent = slot{unused: true}
)

var compactPalettes = map[theme.Mode]compactColors{
	theme.Light: {
		tint:          pin(palette.Violet, palette.Shade600),
		text:          pin(palette.Zinc, palette.Shade950),
		inverseText:   pin(palette.Zinc, palette.Shade50),
		hover:         pin(palette.Zinc, palette.Shade100),
		secondary:     pin(palette.Zinc, palette.Shade100),
		destructive:   pin(palette.Red, palette.Shade500),
		onDestructive: pin(palette.White, palette.Shade950),
		outlineBorder: pinWash(palette.Zinc, palette.Shade950, palette.Alpha20),
		input:         pin(palette.Zinc, palette.Shade50),
		inputHover:    pin(palette.Zinc, palette.Shade100),
	},
	theme.Dark: {
		tint:          pin(palette.Purple, palette.Shade500),
		text:          pin(palette.Zinc, palette.Shade50),
		inverseText:   pin(palette.Zinc, palette.Shade950),
		hover:         pin(palette.Zinc, palette.Shade800),
		secondary:     pin(palette.Zinc, palette.Shade800),
		destructive:   pinWash(palette.Red, palette.Shade600, palette.Alpha80),
		onDestructive: pin(palette.White, palette.Shade950),
		outlineBorder: pin(palette.Zinc, palette.Shade700),
		input:         pinWash(palette.White, palette.Shade950, "0a"),
		inputHover:    pinWash(palette.White, palette.Shade950, "14"),
	},
}

type compactPlan struct {
	plan
	underline      bool
	pressedOpacity float64
	pressedBg      slot
}

func (p compactPlan) treatment(pal *palette.Palette) CompactTreatment {
	out := CompactTreatment{
		Treatment: p.plan.treatment(pal, ""),
		Underline: p.underline,
		Pressed:   Delta{Opacity: p.pressedOpacity},
	}
	if bg := p.pressedBg.resolve(pal, ""); bg != "" {
		out.Pressed.Background = bg
	}
	return out
}

type compactKey struct {
	mode    theme.Mode
	variant CompactVariant
}

func buildCompactPlans() map[compactKey]compactPlan {
	plans := make(map[compactKey]compactPlan, len(theme.Modes)*len(CompactVariants))
	for mode, c := range compactPalettes {
		for variant, p := range compactRecipes(c) {
			plans[compactKey{mode: mode, variant: variant}] = p
		}
	}
	return plans
}

func compactRecipes(c compactColors) map[CompactVariant]compactPlan {
	flat := func(bg, border, text slot, width int) plan {
		return plan{background: bg, border: border, text: text, placeholder: absent, borderWidth: width}
	}
	return map[CompactVariant]compactPlan{
		CompactDefault: {
			plan:           flat(c.tint, none, c.inverseText, 0),
			pressedOpacity: 0.9,
			pressedBg:      absent,
		},
		CompactDestructive: {
			plan:           flat(c.destructive, none, c.onDestructive, 0),
			pressedOpacity: 0.9,
			pressedBg:      absent,
		},
		CompactOutline: {
			plan:      flat(c.input, c.outlineBorder, c.text, 1),
			pressedBg: c.inputHover,
		},
		CompactSecondary: {
			plan:           flat(c.secondary, none, c.text, 0),
			pressedOpacity: 0.8,
			pressedBg:      absent,
		},
		CompactGhost: {
			plan:      flat(none, none, c.tint, 0),
			pressedBg: c.hover,
		},
		CompactLink: {
			plan:      flat(none, none, c.tint, 0),
			underline: true,
			pressedBg: absent,
		},
	}
}

var compactPlans = buildCompactPlans()

func resolveCompact(pal *palette.Palette, v CompactVariant, m theme.Mode) CompactTreatment {
	p, ok := compactPlans[compactKey{mode: m.Normalize(), variant: v}]
	if !ok {
		p = compactPlans[compactKey{mode: m.Normalize(), variant: CompactDefault}]
	}
	return p.treatment(pal)
}
