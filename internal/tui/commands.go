package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// releaseCmd ends a key press after hold
func releaseCmd(id string, hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return ReleaseMsg{ControlID: id}
	})
}

// loadingDoneCmd ends the simulated work of a control after d
func loadingDoneCmd(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return LoadingDoneMsg{ControlID: id}
	})
}

// frameCmd schedules the next animation frame
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}
