package core

import (
	"sort"
	"strings"
	"unicode"
)

// KeyCode is a platform key code. Values follow the classic browser key codes,
// so printable keys use the code of their upper-case character.
type KeyCode int

// Control key codes with fixed names.
const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyShift     KeyCode = 16
	KeyCtrl      KeyCode = 17
	KeyAlt       KeyCode = 18
	KeyEsc       KeyCode = 27
	KeySpace     KeyCode = 32
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
)

// keyNames maps control keys to their canonical names.
var keyNames = map[KeyCode]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",

	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyShift:     "shift",
	KeyCtrl:      "ctrl",
	KeyAlt:       "alt",
	KeyEsc:       "esc",
	KeySpace:     "space",
}

// KeyName resolves a key code to its canonical lowercase name.
// Control keys use the fixed table; any other code falls back to its
// lowercased printable character. Returns false if neither resolves.
func KeyName(code KeyCode) (string, bool) {
	if name, ok := keyNames[code]; ok {
		return name, true
	}
	r := rune(code)
	if code <= 0 || r > unicode.MaxRune || !unicode.IsPrint(r) {
		return "", false
	}
	return strings.ToLower(string(r)), true
}

// KeyCodeFor returns the key code that KeyName resolves to name.
// Used by hosts whose input events carry names or runes instead of codes.
// Characters whose code belongs to a control key, such as '&' (38, up),
// have no code of their own and are rejected.
func KeyCodeFor(name string) (KeyCode, bool) {
	name = strings.ToLower(name)
	for code, n := range keyNames {
		if n == name {
			return code, true
		}
	}
	runes := []rune(name)
	if len(runes) != 1 || !unicode.IsPrint(runes[0]) {
		return 0, false
	}
	code := KeyCode(unicode.ToUpper(runes[0]))
	if _, ok := keyNames[code]; ok {
		return 0, false
	}
	return code, true
}

// KeyTracker records which keys are held and fires edge-triggered press
// callbacks. A press callback fires once on the transition from released
// to held, so OS key-repeat events do not fire it again.
type KeyTracker struct {
	held    map[string]bool
	onPress map[string]func()
}

// NewKeyTracker creates an empty key tracker.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		held:    make(map[string]bool),
		onPress: make(map[string]func()),
	}
}

// KeyDown handles a key-down event.
func (t *KeyTracker) KeyDown(code KeyCode) {
	name, ok := KeyName(code)
	if !ok {
		return
	}

	if fn := t.onPress[name]; fn != nil && !t.held[name] {
		fn()
	}

	t.held[name] = true
}

// KeyUp handles a key-up event.
func (t *KeyTracker) KeyUp(code KeyCode) {
	name, ok := KeyName(code)
	if !ok {
		return
	}
	delete(t.held, name)
}

// IsHeld reports whether the named key is currently held.
func (t *KeyTracker) IsHeld(name string) bool {
	return t.held[strings.ToLower(name)]
}

// OnPress registers the press callback for a key name, replacing any
// previous one. A nil callback removes the registration.
func (t *KeyTracker) OnPress(name string, fn func()) {
	name = strings.ToLower(name)
	if fn == nil {
		delete(t.onPress, name)
		return
	}
	t.onPress[name] = fn
}

// Held returns the names of all held keys, sorted.
func (t *KeyTracker) Held() []string {
	names := make([]string, 0, len(t.held))
	for name := range t.held {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
