// Package tui provides the Bubble Tea front end for the crossing game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Owner identifies the model whose tick loop produced it, so a stale loop
// from a finished game never drives the next one.
type TickMsg struct {
	Time  time.Time
	Owner int64
}

var modelIDs atomic.Int64

// nextModelID returns a process-unique model identifier.
func nextModelID() int64 {
	return modelIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(owner int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Owner: owner}
	})
}

// holdTicks converts the key hold window into whole ticks, at least one.
func holdTicks(window time.Duration, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	tick := time.Second / time.Duration(tickRate)
	n := int((window + tick - 1) / tick)
	return max(n, 1)
}
