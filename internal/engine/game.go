package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// Default world settings.
const (
	DefaultWidth    = 800
	DefaultHeight   = 500
	DefaultTickRate = 30
)

// ErrNoHost is returned by Start when the game was created without a host.
var ErrNoHost = errors.New("engine: no host configured")

// Outcome is the declared result of a game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Options configures a new Game. Zero values select the defaults.
type Options struct {
	Width    float64 // World width (default 800)
	Height   float64 // World height (default 500)
	TickRate int     // Ticks per second (default 30)
	Host     Host
	Logger   *log.Logger
}

// Game is the fixed-tick game loop. It owns the world's entities, the key
// state and the per-frame callbacks.
type Game struct {
	width, height float64
	tickRate      int
	interval      time.Duration
	intervalMs    float64

	host     Host
	surface  Surface
	logger   *log.Logger
	keys     *core.KeyTracker
	media    Media
	acquired bool
	cancel   func()

	entities  []Entity
	removed   map[Entity]bool // entities removed during the current tick
	callbacks []*Subscription
	ticks     uint64
	ticking   bool
	repaint   bool // background changed during the current tick

	background        string
	victoryBackground string
	defeatBackground  string
	outcome           Outcome
}

// New creates a stopped game.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Game{
		width:      opts.Width,
		height:     opts.Height,
		tickRate:   opts.TickRate,
		interval:   time.Second / time.Duration(opts.TickRate),
		intervalMs: 1000 / float64(opts.TickRate),
		host:       opts.Host,
		logger:     opts.Logger,
		keys:       core.NewKeyTracker(),
	}
}

// Start begins ticking. The first start acquires the draw surface and binds
// the host's key events. Starting a running game does nothing.
func (g *Game) Start() error {
	if g.cancel != nil {
		return nil
	}
	if g.host == nil {
		return ErrNoHost
	}

	if !g.acquired {
		surface, err := g.host.Acquire(g.width, g.height)
		if err != nil {
			return fmt.Errorf("engine: cannot acquire surface: %w", err)
		}
		g.surface = surface
		g.acquired = true
		g.host.BindKeys(g)
		g.pushBackground()
		g.logger.Debug("surface acquired", "width", g.width, "height", g.height)
	}

	g.cancel = g.host.Every(g.interval, g.Tick)
	g.logger.Debug("loop started", "tick_rate", g.tickRate, "interval", g.interval)

	if g.media != nil {
		if err := g.media.Play(); err != nil {
			g.logger.Warn("cannot play media", "error", err)
		}
	}
	return nil
}

// Stop cancels ticking and pauses the media. Stopping a stopped game does
// nothing.
func (g *Game) Stop() {
	if g.cancel == nil {
		return
	}
	g.cancel()
	g.cancel = nil
	g.logger.Debug("loop stopped", "ticks", g.ticks)

	if g.media != nil {
		if err := g.media.Pause(); err != nil {
			g.logger.Warn("cannot pause media", "error", err)
		}
	}
}

// Running reports whether the game is ticking.
func (g *Game) Running() bool {
	return g.cancel != nil
}

// Tick runs one frame: clear the surface, update then render every entity,
// then run the per-frame callbacks. Hosts call it through the scheduler;
// tests may call it directly.
func (g *Game) Tick() {
	g.ticks++

	if g.surface != nil {
		g.surface.Clear(g.width, g.height)
	}

	// Entities and callbacks added during this tick wait for the next one.
	entities := g.entities
	callbacks := g.callbacks
	g.removed = make(map[Entity]bool)
	g.ticking = true

	for _, e := range entities {
		if g.removed[e] {
			continue
		}
		e.Update(g.Bounds())
		if g.surface != nil {
			e.Render(g.surface)
		}
	}

	for _, sub := range callbacks {
		if sub.cancelled {
			continue
		}
		sub.fn()
	}

	g.ticking = false
	g.removed = nil

	if g.repaint {
		g.repaint = false
		g.redraw()
	}
}

// redraw renders the current entities again without updating them.
func (g *Game) redraw() {
	if g.surface == nil {
		return
	}
	g.surface.Clear(g.width, g.height)
	for _, e := range g.entities {
		e.Render(g.surface)
	}
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Interval returns the fixed tick duration.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// TickRate returns the number of ticks per second.
func (g *Game) TickRate() int {
	return g.tickRate
}

// Logger returns the game's logger.
func (g *Game) Logger() *log.Logger {
	return g.logger
}

// Bounds returns the world as seen by entities.
func (g *Game) Bounds() World {
	return World{Width: g.width, Height: g.height, entities: g.entities}
}

// Add appends an entity to the world. An entity added during a tick is first
// updated on the next tick.
func (g *Game) Add(e Entity) {
	g.entities = append(g.entities, e)
	g.logger.Debug("entity added", "count", len(g.entities))
}

// Remove takes an entity out of the world. An entity removed during a tick
// is skipped for the rest of that tick. Returns false if e was not present.
func (g *Game) Remove(e Entity) bool {
	for i, existing := range g.entities {
		if existing != e {
			continue
		}
		// Copy so that a tick iterating the old slice is unaffected.
		g.entities = append(g.entities[:i:i], g.entities[i+1:]...)
		if g.removed != nil {
			g.removed[e] = true
		}
		g.logger.Debug("entity removed", "count", len(g.entities))
		return true
	}
	return false
}

// Entities returns the world's entities in insertion order.
func (g *Game) Entities() []Entity {
	return append([]Entity(nil), g.entities...)
}

// KeyDown forwards a host key-down event to the key tracker.
func (g *Game) KeyDown(code core.KeyCode) {
	g.keys.KeyDown(code)
}

// KeyUp forwards a host key-up event to the key tracker.
func (g *Game) KeyUp(code core.KeyCode) {
	g.keys.KeyUp(code)
}

// IsKeyHeld reports whether the named key is held.
func (g *Game) IsKeyHeld(name string) bool {
	return g.keys.IsHeld(name)
}

// OnKeyPress registers a callback fired once per press of the named key.
func (g *Game) OnKeyPress(name string, fn func()) {
	g.keys.OnPress(name, fn)
}

// HeldKeys returns the names of the held keys.
func (g *Game) HeldKeys() []string {
	return g.keys.Held()
}

// SetAudio sets the media played while the game runs.
func (g *Game) SetAudio(m Media) {
	g.media = m
}

// SetBackground changes the active background image. The surface is
// repainted at once, or at the end of the tick when called from one, so the
// change shows even if the loop stops right after.
func (g *Game) SetBackground(image string) {
	g.background = image
	if g.surface == nil {
		return
	}
	g.pushBackground()
	if g.ticking {
		g.repaint = true
		return
	}
	g.redraw()
}

// Background returns the active background image.
func (g *Game) Background() string {
	return g.background
}

// SetVictoryBackground sets the background shown after DeclareVictory.
func (g *Game) SetVictoryBackground(image string) {
	g.victoryBackground = image
}

// SetDefeatBackground sets the background shown after DeclareDefeat.
func (g *Game) SetDefeatBackground(image string) {
	g.defeatBackground = image
}

// DeclareVictory records a victory and switches to the victory background.
// The loop keeps running; callers decide whether to Stop.
func (g *Game) DeclareVictory() {
	g.outcome = OutcomeVictory
	g.SetBackground(g.victoryBackground)
	g.logger.Info("victory", "ticks", g.ticks)
}

// DeclareDefeat records a defeat and switches to the defeat background.
// The loop keeps running; callers decide whether to Stop.
func (g *Game) DeclareDefeat() {
	g.outcome = OutcomeDefeat
	g.SetBackground(g.defeatBackground)
	g.logger.Info("defeat", "ticks", g.ticks)
}

// Outcome returns the declared outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) pushBackground() {
	if bs, ok := g.surface.(BackgroundSurface); ok {
		bs.SetBackground(g.background)
	}
}
