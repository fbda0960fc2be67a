// Package theme defines the light/dark theme mode and the providers that
// supply it. Style resolution takes the mode as an explicit argument; nothing
// in the toolkit reads a global "current theme".
package theme

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the appearance a treatment is resolved for.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists the supported modes.
var Modes = []Mode{Light, Dark}

// IsDark reports whether m is the dark mode. Anything else is treated as light.
func (m Mode) IsDark() bool {
	return m == Dark
}

// Normalize maps unknown modes to Light.
func (m Mode) Normalize() Mode {
	if m == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m.IsDark() {
		return Light
	}
	return Dark
}

func (m Mode) String() string {
	return string(m.Normalize())
}

// ParseMode parses "light" or "dark" case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return Light, false
	}
}

// Provider supplies the current theme mode. Consumers re-resolve their
// treatments whenever the value they read changes.
type Provider interface {
	Mode() Mode
}

// Static is a Provider that always returns the same mode.
type Static Mode

// Mode implements Provider.
func (s Static) Mode() Mode {
	return Mode(s).Normalize()
}

// Terminal is a Provider that follows the terminal background colour as
// reported by lipgloss.
type Terminal struct {
	detect func() bool
}

// NewTerminal creates a Provider backed by lipgloss background detection.
func NewTerminal() Terminal {
	return Terminal{detect: lipgloss.HasDarkBackground}
}

// Mode implements Provider.
func (t Terminal) Mode() Mode {
	if t.detect != nil && t.detect() {
		return Dark
	}
	return Light
}

// Switchable is a Provider whose mode can be flipped at runtime, as the
// showcase does when the user toggles the theme. It is safe for concurrent use.
type Switchable struct {
	mu   sync.RWMutex
	mode Mode
}

// NewSwitchable seeds a Switchable from another provider.
func NewSwitchable(initial Provider) *Switchable {
	mode := Light
	if initial != nil {
		mode = initial.Mode()
	}
	return &Switchable{mode: mode}
}

// Mode implements Provider.
func (s *Switchable) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Set replaces the current mode.
func (s *Switchable) Set(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode.Normalize()
}

// Toggle flips the current mode and returns the new one.
func (s *Switchable) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = s.mode.Toggle()
	return s.mode
}

// FromSetting builds a provider from a config value: "light", "dark", or
// "auto" (terminal detection). Empty means auto.
func FromSetting(setting string) Provider {
	if mode, ok := ParseMode(setting); ok {
		return Static(mode)
	}
	return NewTerminal()
}
