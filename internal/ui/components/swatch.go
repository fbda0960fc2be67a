package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
)

const (
	swatchCell  = "    "
	swatchLabel = 8
)

// Swatch renders the ramp of one palette colour, either as a single row of
// blocks or, when detailed, one shade per line with its hex value.
type Swatch struct {
	BaseComponent
	name     palette.Color
	values   []string
	detailed bool
}

// NewSwatch creates a swatch of color resolved against pal.
func NewSwatch(pal *palette.Palette, color palette.Color) *Swatch {
	values := make([]string, len(palette.Shades))
	for i, shade := range palette.Shades {
		values[i] = pal.Resolve(color, shade)
	}
	return &Swatch{BaseComponent: NewBaseComponent(), name: color, values: values}
}

// View renders the swatch.
func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the swatch on the context surface.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	label := s.ComputeStyle(ctx)
	if !s.detailed {
		var b strings.Builder
		b.WriteString(label.Width(swatchLabel).Render(string(s.name)))
		for _, v := range s.values {
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(v)).Render(swatchCell))
		}
		return b.String()
	}

	lines := make([]string, 0, len(s.values)+1)
	lines = append(lines, label.Bold(true).Render(string(s.name)))
	for i, v := range s.values {
		block := lipgloss.NewStyle().Background(lipgloss.Color(v)).Render(swatchCell)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			label.Width(5).Align(lipgloss.Right).Render(palette.Shades[i].String()), block, v))
	}
	return strings.Join(lines, "\n")
}

// WithDetail switches to the one-shade-per-line layout.
func (s *Swatch) WithDetail(detailed bool) *Swatch {
	s.detailed = detailed
	return s
}

// Values returns the resolved hex values from shade 50 to 950.
func (s *Swatch) Values() []string {
	return s.values
}
