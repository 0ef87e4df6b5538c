package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// controlKeys maps Bubble Tea key types to key codes.
var controlKeys = map[tea.KeyType]core.KeyCode{
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyTab:       core.KeyTab,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyEsc:       core.KeyEsc,
	tea.KeySpace:     core.KeySpace,
}

// KeyCode translates a Bubble Tea key message to a key code.
// Single printable runes map to the code of their upper-case character,
// so "w" and "W" are the same key. Alt combinations and pasted text are
// not game input.
func KeyCode(msg tea.KeyMsg) (core.KeyCode, bool) {
	if msg.Alt || msg.Paste {
		return 0, false
	}
	if code, ok := controlKeys[msg.Type]; ok {
		return code, true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	return core.KeyCodeFor(string(msg.Runes))
}

// isQuit reports whether msg ends the program regardless of the scene.
func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	}
	return false
}
