package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive the render context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme mode and the surface colour controls are
// drawn on. It is passed explicitly; there is no global theme.
type RenderContext struct {
	Mode     theme.Mode
	Surface  string
	MaxWidth int
}

type swatchRef struct {
	color palette.Color
	shade palette.Shade
}

// Surface and ink colours of the showcase per mode.
var (
	surfaces = map[theme.Mode]swatchRef{
		theme.Light: {palette.Zinc, palette.Shade50},
		theme.Dark:  {palette.Zinc, palette.Shade950},
	}
	inks = map[theme.Mode]swatchRef{
		theme.Light: {palette.Zinc, palette.Shade950},
		theme.Dark:  {palette.Zinc, palette.Shade50},
	}
)

// SurfaceFor returns the surface colour of mode.
func SurfaceFor(mode theme.Mode) string {
	s := surfaces[mode.Normalize()]
	return palette.Default().Resolve(s.color, s.shade)
}

// InkFor returns the body text colour of mode.
func InkFor(mode theme.Mode) string {
	s := inks[mode.Normalize()]
	return palette.Default().Resolve(s.color, s.shade)
}

// ContextFor returns the render context of mode.
func ContextFor(mode theme.Mode) RenderContext {
	mode = mode.Normalize()
	return RenderContext{Mode: mode, Surface: SurfaceFor(mode)}
}

// DefaultContext returns the light render context.
func DefaultContext() RenderContext {
	return ContextFor(theme.Light)
}

// WithMaxWidth returns a copy of r limited to width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// StyleFunc transforms a style using data from the render context.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the base style with every applier run in order.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, ctx)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// OnSurface paints the background with the context surface.
func OnSurface() StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.Background(lipgloss.Color(ctx.Surface))
	}
}

// Ink paints the foreground with a treatment colour composited on the
// context surface. Transparent leaves the style unchanged.
func Ink(value string) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if c, ok := Color(value, ctx.Surface, 1); ok {
			return s.Foreground(c)
		}
		return s
	}
}
