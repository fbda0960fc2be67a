package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
)

const pxPerColumn = 8

// Color converts a treatment colour to a terminal colour: washes are
// composited over surface, then the result is faded toward surface by
// opacity. It reports false for transparent or empty values.
func Color(value, surface string, opacity float64) (lipgloss.Color, bool) {
	if value == "" || value == palette.Transparent {
		return "", false
	}
	flat := palette.Flatten(value, surface)
	if opacity >= 1 || opacity <= 0 {
		return lipgloss.Color(flat), true
	}
	under, err := colorful.Hex(surface)
	if err != nil {
		return lipgloss.Color(flat), true
	}
	over, err := colorful.Hex(flat)
	if err != nil {
		return lipgloss.Color(flat), true
	}
	return lipgloss.Color(under.BlendRgb(over, opacity).Clamped().Hex()), true
}

// columns maps a pixel length to terminal columns, rounding half up.
func columns(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + pxPerColumn/2) / pxPerColumn
}

// rows maps a control height to vertical padding rows around one text line.
func rows(height int) int {
	if height >= 48 {
		return 1
	}
	return 0
}

func borderFor(radius int) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
