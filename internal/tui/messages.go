package tui

import (
	"time"

	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewHelp
	ViewConfirm
)

// Gesture Messages

// ReleaseMsg ends the press started on a control and invokes it
type ReleaseMsg struct {
	ControlID string
}

// LoadingDoneMsg ends the simulated work of a control
type LoadingDoneMsg struct {
	ControlID string
}

// FrameMsg advances the press animations by one frame
type FrameMsg struct {
	Time time.Time
}

// Theme Messages

// ThemeMsg switches the render mode
type ThemeMsg struct {
	Mode theme.Mode
}

// Error Messages

// ErrorMsg shows the error banner
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
