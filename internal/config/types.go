// Package config loads the showcase document: the theme setting, feedback
// options and the list of controls the showcase renders.
package config

import (
	"errors"
	"time"

	"github.com/alexisbeaulieu97/tokenkit/internal/control"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// Config represents the full showcase document.
type Config struct {
	Theme     string    `yaml:"theme,omitempty" validate:"omitempty,oneof=auto light dark"`
	Palette   string    `yaml:"palette,omitempty"`
	Haptics   Haptics   `yaml:"haptics,omitempty"`
	Animation Animation `yaml:"animation,omitempty"`
	Controls  []Control `yaml:"controls" validate:"required,min=1,dive"`
}

// Haptics configures the press pulse.
type Haptics struct {
	Enabled   bool   `yaml:"enabled"`
	Intensity string `yaml:"intensity,omitempty" validate:"omitempty,oneof=light medium heavy"`
}

// Animation configures the press scale animation.
type Animation struct {
	Enabled      bool                 `yaml:"enabled"`
	PressedScale float64              `yaml:"pressed_scale,omitempty" validate:"gt=0,lte=1"`
	Spring       control.SpringConfig `yaml:"spring,omitempty"`
}

// Control describes one control of the showcase. Token fields are kept as
// written; Tokens resolves them.
type Control struct {
	ID          string   `yaml:"id" validate:"required,control_id"`
	Label       string   `yaml:"label,omitempty" validate:"max=40"`
	Family      string   `yaml:"family,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	Variant     string   `yaml:"variant,omitempty"`
	Size        string   `yaml:"size,omitempty"`
	Radius      string   `yaml:"radius,omitempty"`
	Icon        string   `yaml:"icon,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Disabled    bool     `yaml:"disabled,omitempty"`
	Selected    bool     `yaml:"selected,omitempty"`
	LoadingMS   int      `yaml:"loading_ms,omitempty" validate:"min=0,max=60000"`
	Fail        string   `yaml:"fail,omitempty" validate:"max=120"`
	Confirm     *Confirm `yaml:"confirm,omitempty"`
}

// Confirm is the confirmation prompt attached to a destructive control.
type Confirm struct {
	Title       string `yaml:"title" validate:"required"`
	Message     string `yaml:"message,omitempty"`
	ConfirmText string `yaml:"confirm_text,omitempty"`
	CancelText  string `yaml:"cancel_text,omitempty"`
}

// Action returns the simulated action of c: it fails with the configured
// message, or succeeds.
func (c Control) Action() func() error {
	if c.Fail == "" {
		return func() error { return nil }
	}
	msg := c.Fail
	return func() error { return errors.New(msg) }
}

// Loading is how long the simulated action of c keeps the control busy.
func (c Control) Loading() time.Duration {
	return time.Duration(c.LoadingMS) * time.Millisecond
}

// defaults seeds a document before decoding so absent keys keep them.
func defaults() Config {
	return Config{
		Theme:   "auto",
		Haptics: Haptics{Enabled: true, Intensity: string(control.IntensityLight)},
		Animation: Animation{
			Enabled:      true,
			PressedScale: control.DefaultPressedScale,
			Spring:       control.DefaultSpring,
		},
	}
}

// ThemeProvider returns the provider selected by the theme setting.
func (c *Config) ThemeProvider() theme.Provider {
	return theme.FromSetting(c.Theme)
}

// ControlOptions converts the feedback settings to state machine options.
func (c *Config) ControlOptions() control.Options {
	return control.Options{
		Haptic:          c.Haptics.Enabled,
		HapticIntensity: control.ParseIntensity(c.Haptics.Intensity),
		AnimateOnPress:  c.Animation.Enabled,
		Spring:          c.Animation.Spring,
		PressedScale:    c.Animation.PressedScale,
	}
}
