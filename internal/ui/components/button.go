package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokenkit/internal/control"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
)

// restScale is the scale above which a control renders at full size.
const restScale = 0.995

// Button renders a resolved button or compact treatment.
type Button struct {
	BaseComponent
	label     string
	icon      string
	busy      string
	treatment style.Treatment
	pressed   style.Delta
	size      style.SizeSpec
	state     control.State
	scale     float64
	compact   bool
	selected  bool
	underline bool
}

// NewButton creates a button with the given label, treatment and geometry.
func NewButton(label string, treatment style.Treatment, size style.SizeSpec) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		treatment:     treatment,
		pressed:       style.RichPressed,
		size:          size,
		scale:         1,
	}
}

// NewCompactButton creates a compact family button. The treatment's own
// pressed delta and underline flag are used.
func NewCompactButton(label string, treatment style.CompactTreatment, size style.SizeSpec) *Button {
	b := NewButton(label, treatment.Treatment, size)
	b.pressed = treatment.Pressed
	b.underline = treatment.Underline
	b.compact = true
	return b
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button on the context surface.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.content())
}

func (b *Button) opacity() float64 {
	switch {
	case !b.state.Interactive():
		return style.DisabledOpacity
	case b.state.Pressed && b.pressed.Opacity > 0:
		return b.pressed.Opacity
	default:
		return 1
	}
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	t := b.treatment
	if b.state.Pressed && b.state.Interactive() {
		t = b.pressed.Apply(t)
	}
	opacity := b.opacity()

	s := b.ComputeStyle(ctx)
	if c, ok := Color(t.Background, ctx.Surface, opacity); ok {
		s = s.Background(c)
	}
	if c, ok := Color(t.Text, ctx.Surface, opacity); ok {
		s = s.Foreground(c)
	}

	px := columns(b.size.HorizontalPadding)
	if b.scale < restScale && px > 0 {
		px--
	}
	py := rows(b.size.Height)
	s = s.Padding(py, px)
	if b.size.Width > 0 {
		s = s.Width(columns(b.size.Width)).Align(lipgloss.Center)
	}

	if c, ok := Color(t.Border, ctx.Surface, opacity); ok && t.BorderWidth > 0 {
		s = s.Border(borderFor(b.size.Radius)).BorderForeground(c)
	} else {
		s = s.Border(lipgloss.HiddenBorder())
	}
	if bg, ok := Color(t.Background, ctx.Surface, opacity); ok {
		s = s.BorderBackground(bg)
	}

	return s.Bold(b.selected).Underline(b.underline)
}

func (b *Button) content() string {
	icon, label := b.icon, b.label
	if b.state.Loading && b.busy != "" {
		icon = b.busy
		if b.compact {
			label = ""
		}
	}
	switch {
	case icon == "":
		return label
	case label == "":
		return icon
	}
	gap := columns(b.size.Gap)
	if gap < 1 {
		gap = 1
	}
	return icon + strings.Repeat(" ", gap) + label
}

// WithIcon sets the glyph rendered before the label.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithBusy sets the spinner frame shown while loading.
func (b *Button) WithBusy(frame string) *Button {
	b.busy = frame
	return b
}

// WithPressed overrides the pressed feedback.
func (b *Button) WithPressed(d style.Delta) *Button {
	b.pressed = d
	return b
}

// WithState sets the runtime state.
func (b *Button) WithState(state control.State) *Button {
	b.state = state
	return b
}

// WithScale sets the current animated scale.
func (b *Button) WithScale(scale float64) *Button {
	b.scale = scale
	return b
}

// WithSelected renders the label in bold.
func (b *Button) WithSelected(selected bool) *Button {
	b.selected = selected
	return b
}

// WithUnderline underlines the label.
func (b *Button) WithUnderline(underline bool) *Button {
	b.underline = underline
	return b
}

// WithAppliers appends context-aware style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Opacity returns the opacity the button renders at in its current state.
func (b *Button) Opacity() float64 {
	return b.opacity()
}
