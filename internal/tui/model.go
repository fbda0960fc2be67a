// Package tui is the interactive showcase: every control of a showcase
// document rendered with its resolved style and driven by its own
// control.Control state machine.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tokenkit/internal/config"
	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
	"github.com/alexisbeaulieu97/tokenkit/internal/control"
	"github.com/alexisbeaulieu97/tokenkit/internal/logger"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// DefaultPressHold is how long a key press keeps a control pressed.
const DefaultPressHold = 120 * time.Millisecond

// Options configures the showcase. Every field is optional.
type Options struct {
	Engine *style.Engine
	// Theme overrides the theme setting of the document.
	Theme  theme.Provider
	Logger *logger.Logger
	// Bell receives one BEL per haptic pulse.
	Bell      io.Writer
	FPS       int
	PressHold time.Duration
}

// entry is one showcased control.
type entry struct {
	cfg      config.Control
	tokens   config.Tokens
	control  *control.Control
	animator *control.SpringAnimator
	pressing bool
}

// session is the state shared between the model and the callbacks handed to
// the control state machines.
type session struct {
	cmds   []tea.Cmd
	err    error
	notice string

	prompt      *confirm.Prompt
	promptOwner string
	decide      func(confirm.Decision)

	pulses    int
	lastPulse control.Intensity
	bell      io.Writer
}

func (s *session) queue(cmds ...tea.Cmd) {
	s.cmds = append(s.cmds, cmds...)
}

// Model is the showcase model
type Model struct {
	entries []*entry
	engine  *style.Engine
	theme   *theme.Switchable
	sess    *session
	log     *logger.Logger

	spinner spinner.Model

	viewMode  ViewMode
	cursor    int
	animating bool
	fps       int
	pressHold time.Duration

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel creates the showcase for cfg.
func NewModel(cfg *config.Config, opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = style.NewEngine(nil, 0)
	}
	if opts.Theme == nil {
		opts.Theme = cfg.ThemeProvider()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.PressHold <= 0 {
		opts.PressHold = DefaultPressHold
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		engine:    opts.Engine,
		theme:     theme.NewSwitchable(opts.Theme),
		sess:      &session{bell: opts.Bell},
		log:       opts.Logger,
		spinner:   s,
		viewMode:  ViewList,
		fps:       opts.FPS,
		pressHold: opts.PressHold,
		width:     80,
		height:    24,
	}

	controlOpts := cfg.ControlOptions()
	for _, c := range cfg.Controls {
		tokens, issues := c.Tokens(m.engine.Palette())
		for _, issue := range issues {
			m.log.WithField("control", c.ID).Warn(issue.Error())
		}
		e := &entry{cfg: c, tokens: tokens, animator: control.NewSpringAnimator(opts.FPS)}
		e.control = control.New(c.ID, m.actionFor(e), c.Request(m.cancelledFor(c.ID)), controlOpts, control.Deps{
			Haptics:   control.HapticsFunc(m.sess.pulse),
			Animator:  e.animator,
			Presenter: m.presenterFor(c.ID),
			Logger:    m.log,
			OnError:   m.sess.fail,
		})
		e.control.SetDisabled(c.Disabled)
		m.entries = append(m.entries, e)
	}
	return m
}

// Init starts the spinner
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// actionFor returns the action bound to the control of e: the configured
// outcome, then the simulated busy period.
func (m Model) actionFor(e *entry) func() error {
	run := e.cfg.Action()
	sess := m.sess
	return func() error {
		if err := run(); err != nil {
			return err
		}
		sess.notice = e.cfg.ID + " activated"
		if d := e.cfg.Loading(); d > 0 {
			e.control.SetLoading(true)
			sess.queue(loadingDoneCmd(e.cfg.ID, d))
		}
		return nil
	}
}

func (m Model) cancelledFor(id string) func() {
	sess := m.sess
	return func() {
		sess.notice = id + " not confirmed"
	}
}

func (m Model) presenterFor(id string) confirm.Presenter {
	sess := m.sess
	return confirm.PresenterFunc(func(p confirm.Prompt, decide func(confirm.Decision)) {
		sess.prompt = &p
		sess.promptOwner = id
		sess.decide = decide
	})
}

func (s *session) pulse(intensity control.Intensity) {
	s.pulses++
	s.lastPulse = intensity
	if s.bell != nil {
		_, _ = io.WriteString(s.bell, "\a")
	}
}

func (s *session) fail(err error) {
	s.err = err
}

// Helper Methods

// Mode returns the current render mode
func (m Model) Mode() theme.Mode {
	return m.theme.Mode()
}

// Cursor returns the index of the focused control
func (m Model) Cursor() int {
	return m.cursor
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Len returns the number of showcased controls
func (m Model) Len() int {
	return len(m.entries)
}

// ControlState returns the runtime state of the control with id
func (m Model) ControlState(id string) (control.State, bool) {
	if e := m.entryByID(id); e != nil {
		return e.control.State(), true
	}
	return control.State{}, false
}

// Pulses returns how many haptic pulses fired
func (m Model) Pulses() int {
	return m.sess.pulses
}

// Notice returns the last status line message
func (m Model) Notice() string {
	return m.sess.notice
}

// ErrorMessage returns the banner text, empty when no banner is shown
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}

func (m Model) selected() *entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

func (m Model) entryByID(id string) *entry {
	for _, e := range m.entries {
		if e.cfg.ID == id {
			return e
		}
	}
	return nil
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.entries) - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
}

// absorb moves what the control callbacks left in the session into the
// model and returns the commands they queued.
func (m *Model) absorb() tea.Cmd {
	if m.sess.err != nil {
		m.showError = true
		m.errorMsg = m.sess.err.Error()
		m.log.Error(m.sess.err, "control action failed")
		m.sess.err = nil
	}
	if m.sess.prompt != nil {
		m.viewMode = ViewConfirm
	}
	cmds := m.sess.cmds
	m.sess.cmds = nil
	return tea.Batch(cmds...)
}
