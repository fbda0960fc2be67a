package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokenkit/internal/style"
)

// DefaultInputWidth is the field width in columns when none is set.
const DefaultInputWidth = 28

// Input renders a text field with an input family treatment.
type Input struct {
	BaseComponent
	placeholder string
	value       string
	treatment   style.Treatment
	size        style.SizeSpec
	width       int
	disabled    bool
	focused     bool
}

// NewInput creates an input showing placeholder until a value is set.
func NewInput(placeholder string, treatment style.Treatment, size style.SizeSpec) *Input {
	return &Input{
		BaseComponent: NewBaseComponent(),
		placeholder:   placeholder,
		treatment:     treatment,
		size:          size,
		width:         DefaultInputWidth,
	}
}

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input on the context surface.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	opacity := 1.0
	if i.disabled {
		opacity = style.DisabledOpacity
	}
	t := i.treatment

	s := i.ComputeStyle(ctx).
		Padding(rows(i.size.Height), columns(i.size.HorizontalPadding)).
		Width(i.width)
	if c, ok := Color(t.Background, ctx.Surface, opacity); ok {
		s = s.Background(c).BorderBackground(c)
	}

	text, ink := i.value, t.Text
	if text == "" {
		text, ink = i.placeholder, t.Placeholder
	}
	if c, ok := Color(ink, ctx.Surface, opacity); ok {
		s = s.Foreground(c)
	}

	if c, ok := Color(t.Border, ctx.Surface, opacity); ok && t.BorderWidth > 0 {
		s = s.Border(borderFor(i.size.Radius)).BorderForeground(c)
	} else {
		s = s.Border(lipgloss.HiddenBorder())
	}
	if i.focused {
		s = s.BorderStyle(lipgloss.ThickBorder())
	}
	return s.Render(text)
}

// WithValue sets the field contents.
func (i *Input) WithValue(value string) *Input {
	i.value = value
	return i
}

// WithWidth sets the field width in columns.
func (i *Input) WithWidth(width int) *Input {
	if width > 0 {
		i.width = width
	}
	return i
}

// WithDisabled dims the field.
func (i *Input) WithDisabled(disabled bool) *Input {
	i.disabled = disabled
	return i
}

// WithFocused draws a heavier border.
func (i *Input) WithFocused(focused bool) *Input {
	i.focused = focused
	return i
}

// Placeholder returns the placeholder text.
func (i *Input) Placeholder() string {
	return i.placeholder
}
