// Package tui runs Sky Battle in a terminal with Bubble Tea, locally or
// over SSH. It owns the tick loop, key mapping, rendering and persistence
// of finished runs; the games themselves stay free of Bubble Tea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// defaultTickRate matches the 50ms frame the simulation is tuned for.
const defaultTickRate = 20

// tickCmd schedules the next tick. Each tick message runs exactly one
// simulation step, so ticks never overlap.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
