package style

import (
	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// Treatment is the resolved visual style of one (colour, variant, mode)
// combination. Colour fields hold a six-digit hex, an eight-digit hex when a
// wash is applied, or palette.Transparent.
type Treatment struct {
	Background  string `json:"background" yaml:"background"`
	Border      string `json:"border" yaml:"border"`
	Text        string `json:"text" yaml:"text"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	BorderWidth int    `json:"borderWidth" yaml:"border_width"`
}

// colorClass partitions colours by which shade rule governs them.
type colorClass int

const (
	classHue colorClass = iota
	classBlack
	classWhite
)

func classOf(c palette.Color) colorClass {
	switch c {
	case palette.Black:
		return classBlack
	case palette.White:
		return classWhite
	default:
		return classHue
	}
}

// tone names a role a recipe paints with; a shade rule maps it to a shade.
type tone int

const (
	toneNone tone = iota
	toneAccent
	toneInk
	toneSurface
	toneTint
	toneLine
	toneHint
)

// paint is one recipe slot. A washed paint gets the rule's alpha for its tone.
type paint struct {
	tone   tone
	washed bool
}

var transparent = paint{tone: toneNone}

func solid(t tone) paint  { return paint{tone: t} }
func washed(t tone) paint { return paint{tone: t, washed: true} }

// recipe says which tone fills each slot of a variant, independent of colour
// and mode.
type recipe struct {
	background  paint
	border      paint
	text        paint
	placeholder paint
	borderWidth int
}

// shadeRule maps tones to shades (and washes to alphas) for one colour class
// in one mode.
type shadeRule struct {
	shades map[tone]palette.Shade
	washes map[tone]palette.Alpha
}

// familySpec is everything needed to build a family's plan table.
type familySpec struct {
	family         Family
	variants       []Variant
	recipes        map[Variant]recipe
	rules          map[colorClass]map[theme.Mode]shadeRule
	defaultColor   palette.Color
	defaultVariant Variant
}

// slot is a recipe slot with its shade already chosen. The colour is
// supplied at resolution time, or pinned for families with fixed colours.
type slot struct {
	transparent bool
	unused      bool
	color       palette.Color
	shade       palette.Shade
	alpha       palette.Alpha
}

func (s slot) resolve(pal *palette.Palette, c palette.Color) string {
	switch {
	case s.unused:
		return ""
	case s.transparent:
		return palette.Transparent
	}
	if s.color != "" {
		c = s.color
	}
	return palette.WithAlpha(pal.Resolve(c, s.shade), s.alpha)
}

// plan is a variant recipe bound to a shade rule.
type plan struct {
	background  slot
	border      slot
	text        slot
	placeholder slot
	borderWidth int
}

func (p plan) treatment(pal *palette.Palette, c palette.Color) Treatment {
	return Treatment{
		Background:  p.background.resolve(pal, c),
		Border:      p.border.resolve(pal, c),
		Text:        p.text.resolve(pal, c),
		Placeholder: p.placeholder.resolve(pal, c),
		BorderWidth: p.borderWidth,
	}
}

type planKey struct {
	class   colorClass
	mode    theme.Mode
	variant Variant
}

// planTable is the precomputed (colour class, mode, variant) lookup of a family.
type planTable struct {
	spec  familySpec
	plans map[planKey]plan
}

// buildPlans binds every recipe of spec to every shade rule. The button and
// input families both go through here; they differ only in their spec.
func buildPlans(spec familySpec) planTable {
	plans := make(map[planKey]plan, len(spec.rules)*len(theme.Modes)*len(spec.recipes))
	for class, byMode := range spec.rules {
		for mode, rule := range byMode {
			for variant, r := range spec.recipes {
				plans[planKey{class: class, mode: mode, variant: variant}] = plan{
					background:  bind(r.background, rule),
					border:      bind(r.border, rule),
					text:        bind(r.text, rule),
					placeholder: bindOptional(r.placeholder, rule),
					borderWidth: r.borderWidth,
				}
			}
		}
	}
	return planTable{spec: spec, plans: plans}
}

func bind(p paint, rule shadeRule) slot {
	if p.tone == toneNone {
		return slot{transparent: true}
	}
	s := slot{shade: rule.shades[p.tone]}
	if p.washed {
		s.alpha = rule.washes[p.tone]
	}
	return s
}

func bindOptional(p paint, rule shadeRule) slot {
	if p.tone == toneNone {
		return slot{unused: true}
	}
	return bind(p, rule)
}

// resolve normalises unknown tokens to the family defaults and returns the
// treatment. It never fails.
func (t planTable) resolve(pal *palette.Palette, c palette.Color, v Variant, m theme.Mode) Treatment {
	c, v, m = t.normalize(pal, c, v, m)
	p, ok := t.plans[planKey{class: classOf(c), mode: m, variant: v}]
	if !ok {
		p = t.plans[planKey{class: classHue, mode: m, variant: t.spec.defaultVariant}]
	}
	return p.treatment(pal, c)
}

func (t planTable) normalize(pal *palette.Palette, c palette.Color, v Variant, m theme.Mode) (palette.Color, Variant, theme.Mode) {
	if !pal.Has(c) {
		c = t.spec.defaultColor
	}
	if _, ok := t.spec.recipes[v]; !ok {
		v = t.spec.defaultVariant
	}
	return c, v, m.Normalize()
}

// sameForModes repeats one rule for every mode. Black and white use it: their
// treatments do not depend on the theme.
func sameForModes(rule shadeRule) map[theme.Mode]shadeRule {
	out := make(map[theme.Mode]shadeRule, len(theme.Modes))
	for _, mode := range theme.Modes {
		out[mode] = rule
	}
	return out
}
