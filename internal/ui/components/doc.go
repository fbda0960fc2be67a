// Package components renders resolved control styles to the terminal.
//
// # Overview
//
// Components take the output of the style engine (a style.Treatment and a
// style.SizeSpec) together with the runtime control.State and turn them
// into lipgloss strings. They make no styling decisions of their own: every
// colour comes from the treatment, every dimension from the size spec.
//
// # Render context
//
// The theme mode and the surface colour behind the controls are passed
// explicitly through RenderContext:
//
//	ctx := components.ContextFor(theme.Dark)
//	out := button.ViewWithContext(ctx)
//
// View() renders with the light context.
//
// # Terminal approximations
//
// Terminals have no alpha channel and no sub-cell geometry, so:
//   - washed colours (#rrggbbaa) are composited over the context surface
//   - reduced opacity (disabled, pressed) blends the colours toward the surface
//   - pixel sizes are mapped to cells, eight pixels per column
//   - a scale below 1 trims one column of padding on each side
//   - a non-zero radius selects the rounded border set
//
// # Components
//
//   - Button: rich and compact family buttons, loading and selected states
//   - Input: text input with placeholder
//   - Dialog: confirmation prompt with wrapped message and two choices
//   - Swatch: one palette entry
//   - Stack: vertical/horizontal arrangement with gaps
package components
