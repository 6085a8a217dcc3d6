package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a game frame. It carries the scheduler's timestamp,
// which the loop uses to compute elapsed ticks, and the generation of
// the scheduling chain that requested it. Pausing and resuming bumps
// the generation so an in-flight tick from a stopped chain is ignored
// instead of forking a second chain.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that delivers the next frame
// callback after the given interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
