// Package tui provides the Bubble Tea front-ends for mazegen: the maze
// viewer, the history browser and the SSH server that hosts the viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances an animated generation. Anim identifies the animation
// that scheduled it; ticks from a replaced animation are dropped.
type TickMsg struct {
	Time time.Time
	Anim int
}

// tickCmd returns a Bubble Tea command that sends a tick for anim at the specified rate.
func tickCmd(tickRate, anim int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Anim: anim}
	})
}
