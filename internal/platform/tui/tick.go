// Package tui runs the snake game in a terminal with Bubble Tea, locally or
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one platform frame. Gen identifies the frame loop that
// scheduled it; ticks from a stopped loop are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickCmd schedules the next frame of loop gen at tickRate frames per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
