// Package tui provides the Bubble Tea shell for Star Quest.
// It handles the terminal UI loop, input mapping, the hub and finale screens,
// and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step. Loop identifies the frame
// loop that requested it; ticks from a loop that was replaced are dropped.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh frame loop id.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for loop after
// 1/tickRate seconds.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
