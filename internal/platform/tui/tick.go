// Package tui provides the Bubble Tea host for gamebuilder scenes.
// It drives the game loop from tea.Tick, maps terminal keys to key codes,
// and renders the world as colored character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// TickMsg is sent to trigger a game tick. Gen identifies the schedule that
// produced it; ticks from a cancelled schedule are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// releaseMsg asks the host to release a key that has not repeated since Seen.
type releaseMsg struct {
	Code core.KeyCode
	Seen time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// releaseCmd returns a command that checks a key for release after timeout.
func releaseCmd(code core.KeyCode, seen time.Time, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return releaseMsg{Code: code, Seen: seen}
	})
}
