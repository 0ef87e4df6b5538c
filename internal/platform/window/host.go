// Package window runs gamebuilder scenes in a desktop window using Ebitengine.
// Ticks follow ebiten's Update rate, images are loaded from files and the
// scene's audio asset plays as looping music.
package window

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/engine"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

// ErrAlreadyAcquired is returned when a second game asks for the surface.
var ErrAlreadyAcquired = errors.New("window: surface already acquired")

// Host is an engine.Host backed by an ebiten window. It also implements
// ebiten.Game.
type Host struct {
	styles  map[string]config.SpriteStyle
	logger  *log.Logger
	surface *Surface
	keys    engine.KeyHandler
	fn      func()
	gen     uint64

	width, height int
	pressed       []ebiten.Key
	released      []ebiten.Key
	held          keyState
}

// NewHost creates a window host drawing placeholders from styles.
func NewHost(styles map[string]config.SpriteStyle, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{styles: styles, logger: logger}
}

// Acquire creates the canvas and sizes the window to the world.
func (h *Host) Acquire(width, height float64) (engine.Surface, error) {
	if h.surface != nil {
		return nil, ErrAlreadyAcquired
	}
	h.width = int(math.Ceil(width))
	h.height = int(math.Ceil(height))
	h.surface = NewSurface(h.width, h.height, h.styles, h.logger)
	ebiten.SetWindowSize(h.width, h.height)
	return h.surface, nil
}

// BindKeys routes window key events to k.
func (h *Host) BindKeys(k engine.KeyHandler) {
	h.keys = k
}

// Every runs fn from ebiten's Update at the rate closest to interval.
// The window keeps drawing the last frame while no schedule is active.
func (h *Host) Every(interval time.Duration, fn func()) func() {
	if interval > 0 {
		tps := int(math.Round(float64(time.Second) / float64(interval)))
		ebiten.SetTPS(max(tps, 1))
	}

	h.gen++
	gen := h.gen
	h.fn = fn
	return func() {
		if h.gen == gen {
			h.fn = nil
		}
	}
}

// Update delivers key edges and runs one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.keys != nil {
		h.pressed = inpututil.AppendJustPressedKeys(h.pressed[:0])
		for _, k := range h.pressed {
			if code, ok := h.held.press(k); ok {
				h.keys.KeyDown(code)
			}
		}
		h.released = inpututil.AppendJustReleasedKeys(h.released[:0])
		for _, k := range h.released {
			if code, ok := h.held.release(k); ok {
				h.keys.KeyUp(code)
			}
		}
	}

	if h.fn != nil {
		h.fn()
	}
	return nil
}

// Draw shows the canvas drawn by the last tick.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.surface == nil {
		return
	}
	screen.DrawImage(h.surface.Canvas(), nil)
}

// Layout keeps the logical screen at world size.
func (h *Host) Layout(_, _ int) (int, int) {
	return max(h.width, 1), max(h.height, 1)
}

// Run plays scene in a window until it is closed and returns the declared
// outcome. tickRate overrides the scene's rate when positive.
func Run(scene registry.Scene, tickRate int, logger *log.Logger) (engine.Outcome, error) {
	cfg := scene.Config()
	host := NewHost(cfg.Sprites, logger)

	opts := scene.Options()
	opts.Host = host
	opts.Logger = logger
	if tickRate > 0 {
		opts.TickRate = tickRate
	}

	game := engine.New(opts)
	if err := scene.Build(game); err != nil {
		return engine.OutcomeNone, fmt.Errorf("build scene %s: %w", scene.ID(), err)
	}

	if path := cfg.Assets.Audio; path != "" {
		music, err := LoadMusic(path)
		if err != nil {
			logger.Warn("cannot load audio", "audio", path, "error", err)
		} else {
			defer music.Close()
			game.SetAudio(music)
		}
	}

	if err := game.Start(); err != nil {
		return engine.OutcomeNone, fmt.Errorf("start scene %s: %w", scene.ID(), err)
	}
	defer game.Stop()

	ebiten.SetWindowTitle(scene.Title())
	if err := ebiten.RunGame(host); err != nil {
		return game.Outcome(), err
	}
	return game.Outcome(), nil
}
