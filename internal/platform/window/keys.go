package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

var controlKeys = map[ebiten.Key]core.KeyCode{
	ebiten.KeyArrowUp:      core.KeyUp,
	ebiten.KeyArrowDown:    core.KeyDown,
	ebiten.KeyArrowLeft:    core.KeyLeft,
	ebiten.KeyArrowRight:   core.KeyRight,
	ebiten.KeyEnter:        core.KeyEnter,
	ebiten.KeyTab:          core.KeyTab,
	ebiten.KeyBackspace:    core.KeyBackspace,
	ebiten.KeyEscape:       core.KeyEsc,
	ebiten.KeySpace:        core.KeySpace,
	ebiten.KeyShiftLeft:    core.KeyShift,
	ebiten.KeyShiftRight:   core.KeyShift,
	ebiten.KeyControlLeft:  core.KeyCtrl,
	ebiten.KeyControlRight: core.KeyCtrl,
	ebiten.KeyAltLeft:      core.KeyAlt,
	ebiten.KeyAltRight:     core.KeyAlt,
}

// keyCode translates an ebiten key to a key code. Letters and digits use the
// code of their upper-case character.
func keyCode(k ebiten.Key) (core.KeyCode, bool) {
	if code, ok := controlKeys[k]; ok {
		return code, true
	}
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return core.KeyCode('A' + int(k-ebiten.KeyA)), true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return core.KeyCode('0' + int(k-ebiten.KeyDigit0)), true
	}
	return 0, false
}

// keyState turns physical key edges into key code edges. Keys that share a
// code, like left and right shift, hold it until the last of them is up.
type keyState struct {
	down map[core.KeyCode]int
}

// press records k going down and reports whether its code went down with it.
func (s *keyState) press(k ebiten.Key) (core.KeyCode, bool) {
	code, ok := keyCode(k)
	if !ok {
		return 0, false
	}
	if s.down == nil {
		s.down = make(map[core.KeyCode]int)
	}
	s.down[code]++
	return code, s.down[code] == 1
}

// release records k going up and reports whether its code is now released.
func (s *keyState) release(k ebiten.Key) (core.KeyCode, bool) {
	code, ok := keyCode(k)
	if !ok {
		return 0, false
	}
	if s.down[code] > 1 {
		s.down[code]--
		return code, false
	}
	delete(s.down, code)
	return code, true
}
