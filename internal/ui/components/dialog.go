package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
)

// DefaultDialogWidth is the content width of a dialog in columns.
const DefaultDialogWidth = 48

// Dialog renders a confirmation prompt with its two choices.
type Dialog struct {
	BaseComponent
	prompt  confirm.Prompt
	confirm *Button
	cancel  *Button
	width   int
}

// NewDialog creates a dialog for prompt. The buttons are rendered as given;
// nil buttons are skipped.
func NewDialog(prompt confirm.Prompt, confirmButton, cancelButton *Button) *Dialog {
	return &Dialog{
		BaseComponent: NewBaseComponent(),
		prompt:        prompt,
		confirm:       confirmButton,
		cancel:        cancelButton,
		width:         DefaultDialogWidth,
	}
}

// View renders the dialog.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog on the context surface.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if ctx.MaxWidth > 0 && ctx.MaxWidth-6 < width {
		width = ctx.MaxWidth - 6
	}
	if width < 12 {
		width = 12
	}

	ink := lipgloss.Color(InkFor(ctx.Mode))
	surface := lipgloss.Color(ctx.Surface)
	text := lipgloss.NewStyle().Foreground(ink).Background(surface)

	title := text.Bold(true).Render(d.prompt.Title)
	body := VStack(Text(title))
	if d.prompt.Message != "" {
		body.Add(Text(text.Render(wordwrap.String(d.prompt.Message, width))))
	}
	body.Add(HStack(renderables(d.cancel, d.confirm)...).WithGap(2).WithAlign(AlignCenter))
	body.WithGap(1)

	frame := d.ComputeStyle(ctx).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ink).
		BorderBackground(surface).
		Background(surface).
		Padding(1, 2)
	return frame.Render(body.ViewWithContext(ctx))
}

// WithWidth sets the message wrap width.
func (d *Dialog) WithWidth(width int) *Dialog {
	if width > 0 {
		d.width = width
	}
	return d
}

// Prompt returns the prompt the dialog shows.
func (d *Dialog) Prompt() confirm.Prompt {
	return d.prompt
}

// Text is a pre-rendered string.
type Text string

// View returns the string itself.
func (t Text) View() string {
	return string(t)
}

func renderables(buttons ...*Button) []Renderable {
	out := make([]Renderable, 0, len(buttons))
	for _, b := range buttons {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}
