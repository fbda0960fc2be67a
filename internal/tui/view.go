package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
	"github.com/alexisbeaulieu97/tokenkit/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderListView()
	}
}

func (m Model) renderListView() string {
	ctx := components.ContextFor(m.Mode())

	sections := []string{m.renderHeader()}
	if m.showError {
		sections = append(sections, errorBannerStyle.Render("✗ "+m.errorMsg))
	}
	sections = append(sections, m.renderControls(ctx), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	status := fmt.Sprintf("mode: %s  •  haptic pulses: %d", m.Mode(), m.sess.pulses)
	if m.sess.pulses > 0 {
		status += fmt.Sprintf(" (%s)", m.sess.lastPulse)
	}
	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("tokenkit showcase"),
		captionStyle.Render(status),
	)
	if m.sess.notice != "" {
		title = lipgloss.JoinVertical(lipgloss.Left, title, noticeStyle.Render(m.sess.notice))
	}
	return headerStyle.Render(title)
}

// renderControls renders the window of controls that keeps the cursor
// visible within the terminal height.
func (m Model) renderControls(ctx components.RenderContext) string {
	if len(m.entries) == 0 {
		return captionStyle.Render("No controls configured.")
	}

	rendered := make([]string, len(m.entries))
	for i, e := range m.entries {
		rendered[i] = m.renderEntry(e, i == m.cursor, ctx)
	}

	available := m.height - 8
	if available < 1 {
		available = 1
	}
	start := 0
	for start < m.cursor && span(rendered[start:m.cursor+1]) > available {
		start++
	}
	end := start
	used := 0
	for end < len(rendered) {
		h := lipgloss.Height(rendered[end])
		if used+h > available && end > start {
			break
		}
		used += h
		end++
	}

	items := rendered[start:end]
	if start > 0 {
		items = append([]string{captionStyle.Render("▲ more above")}, items...)
	}
	if end < len(rendered) {
		items = append(items, captionStyle.Render("▼ more below"))
	}

	surface := lipgloss.NewStyle().Background(lipgloss.Color(ctx.Surface))
	return surface.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func span(views []string) int {
	total := 0
	for _, v := range views {
		total += lipgloss.Height(v)
	}
	return total
}

func (m Model) renderEntry(e *entry, focused bool, ctx components.RenderContext) string {
	marker := "  "
	if focused {
		marker = markerStyle.Render("› ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		marker,
		m.component(e, focused, ctx.Mode).ViewWithContext(ctx),
		"  ",
		captionStyle.Render(describe(e)),
	)
}

// component builds the renderer of e from its resolved treatment and
// geometry in mode.
func (m Model) component(e *entry, focused bool, mode theme.Mode) components.ContextualRenderable {
	t := e.tokens
	c := e.cfg
	state := e.control.State()

	switch t.Family {
	case style.FamilyInput:
		size := style.ResolveGeometry(t.Size)
		size.Radius = style.ResolveRadius(t.Radius)
		return components.NewInput(c.Placeholder, m.engine.InputTreatment(t.Color, t.Variant, mode), size).
			WithDisabled(c.Disabled).
			WithFocused(focused)

	case style.FamilyCompact:
		size := style.ResolveCompactGeometry(t.CompactSize, c.Icon != "", c.Label != "")
		return components.NewCompactButton(c.Label, m.engine.CompactTreatment(t.CompactVariant, mode), size).
			WithIcon(c.Icon).
			WithState(state).
			WithScale(e.animator.Scale()).
			WithBusy(m.spinner.View()).
			WithSelected(c.Selected)

	default:
		size := style.ResolveGeometry(t.Size)
		size.Radius = style.ResolveRadius(t.Radius)
		return components.NewButton(c.Label, m.engine.Treatment(t.Color, t.Variant, mode), size).
			WithIcon(c.Icon).
			WithState(state).
			WithScale(e.animator.Scale()).
			WithBusy(m.spinner.View()).
			WithSelected(c.Selected).
			WithUnderline(t.Variant == style.Link)
	}
}

func describe(e *entry) string {
	t := e.tokens
	parts := []string{e.cfg.ID}
	switch t.Family {
	case style.FamilyCompact:
		parts = append(parts, string(t.Family), string(t.CompactVariant), string(t.CompactSize))
	default:
		parts = append(parts, string(t.Family), string(t.Color), string(t.Variant), string(t.Size))
	}
	state := e.control.State()
	switch {
	case state.Disabled:
		parts = append(parts, "disabled")
	case state.Loading:
		parts = append(parts, "loading")
	}
	if e.cfg.Confirm != nil {
		parts = append(parts, "confirm")
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderFooter() string {
	hints := []string{
		"↑/↓: focus",
		"enter: press",
		"l/d/t: theme",
		"?: help",
	}
	if m.showError {
		hints = append(hints, "x: dismiss error")
	}
	hints = append(hints, "q: quit")
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderHelpView() string {
	keys := [][2]string{
		{"↑/↓, j/k", "Move focus"},
		{"tab", "Next control"},
		{"enter, space", "Press the focused control"},
		{"esc", "Cancel a press in progress"},
		{"l / d", "Light / dark mode"},
		{"t", "Toggle mode"},
		{"x", "Dismiss error"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
		{"", ""},
		{"y, enter", "Confirm a prompt"},
		{"n", "Decline a prompt"},
		{"esc", "Dismiss a prompt"},
	}
	lines := []string{titleStyle.Render("tokenkit showcase help"), ""}
	for _, k := range keys {
		lines = append(lines, helpKeyStyle.Render(k[0])+helpDescStyle.Render(k[1]))
	}
	lines = append(lines, "", footerStyle.Render("Press ? or Esc to close"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderConfirmView() string {
	if m.sess.prompt == nil {
		return m.renderListView()
	}
	mode := m.Mode()
	ctx := components.ContextFor(mode).WithMaxWidth(m.width)
	p := *m.sess.prompt

	size := style.ResolveCompactGeometry(style.CompactSizeDefault, false, true)
	confirmButton := components.NewCompactButton(
		p.ConfirmLabel+" (y)", m.engine.CompactTreatment(style.CompactDestructive, mode), size)
	cancelButton := components.NewCompactButton(
		p.CancelLabel+" (n)", m.engine.CompactTreatment(style.CompactOutline, mode), size)

	dialog := components.NewDialog(p, confirmButton, cancelButton).ViewWithContext(ctx)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}
