package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokenkit/internal/config"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

const showcaseDoc = `theme: light
controls:
  - id: save
    label: Save
  - id: sync
    label: Sync
    loading_ms: 100
  - id: locked
    label: Locked
    disabled: true
  - id: delete
    label: Delete
    confirm:
      title: Delete everything?
      message: This cannot be undone.
  - id: flaky
    label: Flaky
    fail: upstream unavailable
  - id: email
    family: input
    placeholder: you@example.com
`

func newTestModel(t *testing.T) (Model, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Parse("test", []byte(showcaseDoc))
	require.NoError(t, err)
	bell := &bytes.Buffer{}
	return NewModel(cfg, Options{Bell: bell}), bell
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func focus(t *testing.T, m Model, id string) Model {
	t.Helper()
	for i := 0; i < m.Len(); i++ {
		if m.selected().cfg.ID == id {
			return m
		}
		m, _ = update(t, m, key("down"))
	}
	t.Fatalf("control %q not found", id)
	return m
}

// tap presses the focused control and delivers its release.
func tap(t *testing.T, m Model) Model {
	t.Helper()
	id := m.selected().cfg.ID
	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, ReleaseMsg{ControlID: id})
	return m
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_SpinnerTickMsg(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	_, cmd := update(t, m, spinner.TickMsg{})
	assert.NotNil(t, cmd)
	assert.NotNil(t, m.Init())
}

func TestMoveCursorWraps(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, key("up"))
	assert.Equal(t, m.Len()-1, m.Cursor())
	m, _ = update(t, m, key("j"))
	assert.Equal(t, 0, m.Cursor())
	m, _ = update(t, m, key("tab"))
	assert.Equal(t, 1, m.Cursor())
}

func TestPressLifecycle(t *testing.T) {
	t.Parallel()
	m, bell := newTestModel(t)

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	state, ok := m.ControlState("save")
	require.True(t, ok)
	assert.True(t, state.Pressed)
	assert.Equal(t, 1, m.Pulses())
	assert.Equal(t, "\a", bell.String())

	m, _ = update(t, m, key("enter"))
	assert.Equal(t, 1, m.Pulses(), "a press in flight ignores repeats")

	m, _ = update(t, m, ReleaseMsg{ControlID: "save"})
	state, _ = m.ControlState("save")
	assert.False(t, state.Pressed)
	assert.Equal(t, "save activated", m.Notice())
}

func TestSpaceAlsoPresses(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, key(" "))
	state, _ := m.ControlState("save")
	assert.True(t, state.Pressed)
}

func TestEscCancelsPress(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("esc"))
	state, _ := m.ControlState("save")
	assert.False(t, state.Pressed)
	assert.Equal(t, "save press cancelled", m.Notice())

	m, _ = update(t, m, ReleaseMsg{ControlID: "save"})
	assert.Equal(t, "save press cancelled", m.Notice(), "a cancelled press never invokes")
}

func TestLoadingControl(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = focus(t, m, "sync")

	m = tap(t, m)
	state, _ := m.ControlState("sync")
	assert.True(t, state.Loading)
	assert.Contains(t, m.View(), "loading")

	pulses := m.Pulses()
	m, _ = update(t, m, key("enter"))
	assert.Equal(t, pulses, m.Pulses(), "loading controls ignore presses")
	assert.Equal(t, "sync is not interactive", m.Notice())

	m, _ = update(t, m, LoadingDoneMsg{ControlID: "sync"})
	state, _ = m.ControlState("sync")
	assert.False(t, state.Loading)
	assert.Equal(t, "sync finished", m.Notice())
}

func TestDisabledControlIgnoresPress(t *testing.T) {
	t.Parallel()
	m, bell := newTestModel(t)
	m = focus(t, m, "locked")

	m, cmd := update(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Pulses())
	assert.Empty(t, bell.String())
	state, _ := m.ControlState("locked")
	assert.False(t, state.Pressed)
}

func TestInputIsNotPressable(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = focus(t, m, "email")

	m, cmd := update(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Pulses())
}

func TestConfirmationFlow(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = focus(t, m, "delete")

	m = tap(t, m)
	require.Equal(t, ViewConfirm, m.GetViewMode())
	view := m.View()
	assert.Contains(t, view, "Delete everything?")
	assert.Contains(t, view, "This cannot be undone.")

	m, _ = update(t, m, key("n"))
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Equal(t, "delete not confirmed", m.Notice())

	m = tap(t, m)
	require.Equal(t, ViewConfirm, m.GetViewMode())
	m, _ = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Equal(t, "delete not confirmed", m.Notice())

	m = tap(t, m)
	m, _ = update(t, m, key("y"))
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Equal(t, "delete activated", m.Notice())
}

func TestActionFailureShowsBanner(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = focus(t, m, "flaky")

	m = tap(t, m)
	assert.Equal(t, "upstream unavailable", m.ErrorMessage())
	assert.Contains(t, m.View(), "upstream unavailable")

	m, _ = update(t, m, key("x"))
	assert.Empty(t, m.ErrorMessage())

	m, _ = update(t, m, ErrorMsg{Err: assert.AnError})
	assert.Equal(t, assert.AnError.Error(), m.ErrorMessage())
	m, _ = update(t, m, ClearErrorMsg{})
	assert.Empty(t, m.ErrorMessage())
}

func TestThemeKeys(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	require.Equal(t, theme.Light, m.Mode())

	m, _ = update(t, m, key("d"))
	assert.Equal(t, theme.Dark, m.Mode())
	m, _ = update(t, m, key("t"))
	assert.Equal(t, theme.Light, m.Mode())
	m, _ = update(t, m, key("t"))
	m, _ = update(t, m, key("l"))
	assert.Equal(t, theme.Light, m.Mode())
	m, _ = update(t, m, ThemeMsg{Mode: theme.Dark})
	assert.Equal(t, theme.Dark, m.Mode())
}

func TestFramesRunUntilSettled(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, key("enter"))
	require.True(t, m.animating)

	var cmd tea.Cmd
	for i := 0; i < 600; i++ {
		m, cmd = update(t, m, FrameMsg{})
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd)
	assert.False(t, m.animating)
	assert.InDelta(t, 0.98, m.selected().animator.Scale(), 1e-3)

	m, cmd = update(t, m, ReleaseMsg{ControlID: "save"})
	assert.NotNil(t, cmd)
	assert.True(t, m.animating)
}

func TestHelpView(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	m, _ = update(t, m, key("?"))
	assert.Equal(t, ViewHelp, m.GetViewMode())
	assert.Contains(t, m.View(), "showcase help")

	m, _ = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.GetViewMode())
}

func TestQuit(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
