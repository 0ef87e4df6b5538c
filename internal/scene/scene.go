// Package scene builds playable scenes from YAML configuration.
//
// A scene places walls, collectible items, patrolling enemies and a
// keyboard-driven player into an engine.Game, then decides victory or defeat
// from per-frame callbacks.
package scene

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/engine"
)

// ErrAlreadyBuilt is returned when Build is called twice on the same scene.
var ErrAlreadyBuilt = errors.New("scene: already built")

// Key names that steer the player.
var (
	keysUp    = []string{"up", "w"}
	keysDown  = []string{"down", "s"}
	keysLeft  = []string{"left", "a"}
	keysRight = []string{"right", "d"}
)

// PauseKey toggles the loop between running and stopped.
const PauseKey = "p"

// enemy is a character that walks its patrol route forever.
type enemy struct {
	ch     *engine.Character
	solid  bool // Blocks the player instead of defeating it
	patrol []patrolStep
	next   int
}

type patrolStep struct {
	dir    engine.Direction
	amount float64
	speed  float64
}

// Scene is a configured level. It satisfies registry.Scene.
type Scene struct {
	id  string
	cfg config.Scene

	game       *engine.Game
	player     *engine.Character
	items      []*engine.Character
	enemies    []*enemy
	difficulty *config.DifficultyManager
	collected  int
	paused     bool
}

// New creates a scene from an already validated configuration.
func New(id string, cfg config.Scene) *Scene {
	return &Scene{
		id:         id,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return s.id }

// Title returns the configured title, falling back to the ID.
func (s *Scene) Title() string {
	if s.cfg.Title != "" {
		return s.cfg.Title
	}
	return s.id
}

// Config returns the scene configuration.
func (s *Scene) Config() config.Scene { return s.cfg }

// Options returns the world size and tick rate from the configuration.
func (s *Scene) Options() engine.Options {
	return engine.Options{
		Width:    s.cfg.World.Width,
		Height:   s.cfg.World.Height,
		TickRate: s.cfg.World.TickRate,
	}
}

// Player returns the player character, or nil before Build.
func (s *Scene) Player() *engine.Character { return s.player }

// Collected returns the number of items picked up so far.
func (s *Scene) Collected() int { return s.collected }

// Paused reports whether the player paused the scene.
func (s *Scene) Paused() bool { return s.paused }

// Build populates g. Entities are added as walls, items, enemies and then
// the player, so the player is updated last in every tick.
func (s *Scene) Build(g *engine.Game) error {
	if s.game != nil {
		return ErrAlreadyBuilt
	}
	s.game = g

	g.SetBackground(s.cfg.Assets.Background)
	g.SetVictoryBackground(s.cfg.Assets.Victory)
	g.SetDefeatBackground(s.cfg.Assets.Defeat)

	for _, w := range s.cfg.Walls {
		g.Add(engine.NewWall(w.X, w.Y, w.Width, w.Height))
	}

	for _, it := range s.cfg.Items {
		item := engine.NewCharacter(characterOptions(it, false))
		s.items = append(s.items, item)
		g.Add(item)
	}

	for i, e := range s.cfg.Enemies {
		en := &enemy{
			ch:    engine.NewCharacter(characterOptions(e.SpriteConfig, e.Solid)),
			solid: e.Solid,
		}
		for j, step := range e.Patrol {
			dir, err := engine.ParseDirection(step.Direction)
			if err != nil {
				return fmt.Errorf("scene: enemy %d step %d: %w", i, j, err)
			}
			en.patrol = append(en.patrol, patrolStep{dir: dir, amount: step.Amount, speed: step.Speed})
		}
		s.enemies = append(s.enemies, en)
		g.Add(en.ch)
	}

	s.player = engine.NewCharacter(characterOptions(s.cfg.Player.SpriteConfig, false))
	g.Add(s.player)

	// Rules see positions already resolved by Update; steering queues the
	// move that the next Update checks against walls.
	s.advancePatrols()
	g.EveryFrame(s.checkRules)
	g.EveryFrame(s.advancePatrols)
	g.EveryFrame(s.steer)

	if ms := s.cfg.Rules.SurviveMs; ms > 0 {
		var timer *engine.Subscription
		timer = g.EveryInterval(time.Duration(ms)*time.Millisecond, func() {
			timer.Cancel()
			s.finish(engine.OutcomeVictory)
		})
	}

	g.OnKeyPress(PauseKey, s.togglePause)

	g.Logger().Info("scene built",
		"scene", s.id,
		"walls", len(s.cfg.Walls),
		"items", len(s.items),
		"enemies", len(s.enemies))
	return nil
}

func characterOptions(c config.SpriteConfig, solid bool) engine.CharacterOptions {
	return engine.CharacterOptions{
		X:      c.X,
		Y:      c.Y,
		Width:  c.Width,
		Height: c.Height,
		Image:  c.Image,
		Solid:  solid,
	}
}

// steer moves the player by its speed for every held direction key.
func (s *Scene) steer() {
	if s.game.Outcome() != engine.OutcomeNone {
		return
	}

	speed := s.cfg.Player.Speed
	if s.anyHeld(keysUp) {
		s.player.MoveUp(speed)
	}
	if s.anyHeld(keysDown) {
		s.player.MoveDown(speed)
	}
	if s.anyHeld(keysLeft) {
		s.player.MoveLeft(speed)
	}
	if s.anyHeld(keysRight) {
		s.player.MoveRight(speed)
	}
}

func (s *Scene) anyHeld(names []string) bool {
	for _, n := range names {
		if s.game.IsKeyHeld(n) {
			return true
		}
	}
	return false
}

// advancePatrols hands every idle enemy its next patrol step, with the
// step's speed scaled by the current difficulty.
func (s *Scene) advancePatrols() {
	if s.game.Outcome() != engine.OutcomeNone {
		return
	}

	for _, e := range s.enemies {
		if e.ch.HasDestination() || len(e.patrol) == 0 {
			continue
		}
		step := e.patrol[e.next]
		speed := s.difficulty.Speed(step.speed, s.collected, s.game.Ticks())
		e.ch.SetDestination(step.dir, step.amount, speed)
		e.next = (e.next + 1) % len(e.patrol)
	}
}

// checkRules collects touched items and ends the scene on contact with a
// non-solid enemy or once every item is collected.
func (s *Scene) checkRules() {
	if s.game.Outcome() != engine.OutcomeNone {
		return
	}

	for _, item := range s.items {
		if !s.player.IsTouching(item) {
			continue
		}
		item.Hide()
		s.game.Remove(item)
		s.collected++
		s.game.Logger().Debug("item collected", "collected", s.collected, "total", len(s.items))
	}

	if s.cfg.Rules.CollectAll && s.collected == len(s.items) {
		s.finish(engine.OutcomeVictory)
		return
	}

	for _, e := range s.enemies {
		if !e.solid && s.player.IsTouching(e.ch) {
			s.finish(engine.OutcomeDefeat)
			return
		}
	}
}

func (s *Scene) finish(o engine.Outcome) {
	if s.game.Outcome() != engine.OutcomeNone {
		return
	}

	switch o {
	case engine.OutcomeVictory:
		s.game.DeclareVictory()
	case engine.OutcomeDefeat:
		s.game.DeclareDefeat()
	}

	if s.cfg.Rules.StopOnEnd {
		s.game.Stop()
	}
}

func (s *Scene) togglePause() {
	if s.game.Outcome() != engine.OutcomeNone {
		return
	}

	if s.game.Running() {
		s.game.Stop()
		s.paused = true
		return
	}
	if err := s.game.Start(); err != nil {
		s.game.Logger().Error("cannot resume scene", "scene", s.id, "error", err)
		return
	}
	s.paused = false
}

// Status returns a one-line progress summary, e.g. "Items 2/5 | 12s / 30s".
func (s *Scene) Status() string {
	if s.game == nil {
		return ""
	}

	var parts []string
	if len(s.items) > 0 {
		parts = append(parts, fmt.Sprintf("Items %d/%d", s.collected, len(s.items)))
	}
	if ms := s.cfg.Rules.SurviveMs; ms > 0 {
		elapsed := time.Duration(s.game.Ticks()) * s.game.Interval()
		parts = append(parts, fmt.Sprintf("%ds / %ds", int(elapsed.Seconds()), ms/1000))
	}

	switch {
	case s.game.Outcome() == engine.OutcomeVictory:
		parts = append(parts, "VICTORY")
	case s.game.Outcome() == engine.OutcomeDefeat:
		parts = append(parts, "DEFEAT")
	case s.paused:
		parts = append(parts, "PAUSED")
	}

	return strings.Join(parts, " | ")
}
