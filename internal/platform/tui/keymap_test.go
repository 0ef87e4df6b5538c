package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.KeyCode
		ok       bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{"lower letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyCode('W'), true},
		{"upper letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, core.KeyCode('W'), true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, core.KeyCode('1'), true},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Alt: true}, 0, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Paste: true}, 0, false},
		{"several runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, 0, false},
		{"ctrl key", tea.KeyMsg{Type: tea.KeyCtrlA}, 0, false},
		{"ampersand", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'&'}}, 0, false},
		{"open paren", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'('}}, 0, false},
		{"percent", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'%'}}, 0, false},
		{"apostrophe", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'\''}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCode(tt.msg)
			if ok != tt.ok {
				t.Fatalf("KeyCode() ok = %v, expected %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("KeyCode() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestKeyCodeNamesMatchTracker(t *testing.T) {
	code, ok := KeyCode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if !ok {
		t.Fatal("KeyCode() should map 'd'")
	}
	if name, _ := core.KeyName(code); name != "d" {
		t.Errorf("KeyName() = %q, expected %q", name, "d")
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuit(tt.msg); got != tt.expected {
				t.Errorf("isQuit() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
