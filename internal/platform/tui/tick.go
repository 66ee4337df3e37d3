// Package tui provides the Bubble Tea front end for the snake game.
// It maps keys to engine actions, drives the tick scheduler from frame
// messages, and renders engine frames with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the render rate when none is configured.
const DefaultFPS = 60

// FrameMsg is sent once per display frame. Gen identifies the game that
// scheduled it; frames from an earlier game are dropped.
type FrameMsg struct {
	At  time.Time
	Gen int
}

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Gen: gen}
	})
}
