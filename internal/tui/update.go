package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ReleaseMsg:
		return m.release(msg.ControlID)

	case LoadingDoneMsg:
		if e := m.entryByID(msg.ControlID); e != nil {
			e.control.SetLoading(false)
			m.sess.notice = e.cfg.ID + " finished"
		}
		cmd := m.startAnimation()
		return m, cmd

	case FrameMsg:
		settled := true
		for _, e := range m.entries {
			if _, done := e.animator.Step(); !done {
				settled = false
			}
		}
		if settled {
			m.animating = false
			return m, nil
		}
		return m, frameCmd(m.fps)

	case ThemeMsg:
		m.theme.Set(msg.Mode)
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Err.Error()
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k", "shift+tab":
		m.MoveCursorUp()
		return m, nil

	case "down", "j", "tab":
		m.MoveCursorDown()
		return m, nil

	case "enter", " ":
		return m.press()

	case "esc":
		if e := m.selected(); e != nil && e.pressing {
			e.pressing = false
			e.control.Cancel()
			m.sess.notice = e.cfg.ID + " press cancelled"
			cmd := m.startAnimation()
			return m, cmd
		}
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case "x":
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case "l":
		m.theme.Set(theme.Light)
		return m, nil

	case "d":
		m.theme.Set(theme.Dark)
		return m, nil

	case "t":
		m.theme.Toggle()
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// press starts a gesture on the focused control; ReleaseMsg completes it.
func (m Model) press() (tea.Model, tea.Cmd) {
	e := m.selected()
	if e == nil || e.tokens.Family == style.FamilyInput || e.pressing {
		return m, nil
	}
	if !e.control.PressIn() {
		m.sess.notice = e.cfg.ID + " is not interactive"
		return m, nil
	}
	e.pressing = true
	cmd := tea.Batch(releaseCmd(e.cfg.ID, m.pressHold), m.startAnimation())
	return m, cmd
}

func (m Model) release(id string) (tea.Model, tea.Cmd) {
	e := m.entryByID(id)
	if e == nil || !e.pressing {
		return m, nil
	}
	e.pressing = false
	e.control.PressOut()
	if err := e.control.Press(); err != nil {
		m.sess.fail(err)
	}
	cmd := tea.Batch(m.absorb(), m.startAnimation())
	return m, cmd
}

// startAnimation starts the frame loop unless it is already running.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd(m.fps)
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = ViewList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleConfirmKeys handles keys in confirmation dialog
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.decide(confirm.Confirmed)
	case "n", "N":
		return m.decide(confirm.Cancelled)
	case "esc":
		return m.decide(confirm.Dismissed)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) decide(d confirm.Decision) (tea.Model, tea.Cmd) {
	decide := m.sess.decide
	m.sess.prompt = nil
	m.sess.promptOwner = ""
	m.sess.decide = nil
	m.viewMode = ViewList
	if decide != nil {
		decide(d)
	}
	cmd := tea.Batch(m.absorb(), m.startAnimation())
	return m, cmd
}
