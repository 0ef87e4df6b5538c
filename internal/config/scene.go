// Package config provides YAML-based scene configuration loading and
// difficulty presets for gamebuilder.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Scene is the full description of a playable scene.
type Scene struct {
	Title      string                 `yaml:"title"`
	World      WorldConfig            `yaml:"world"`
	Assets     AssetsConfig           `yaml:"assets"`
	Player     PlayerConfig           `yaml:"player"`
	Walls      []RectConfig           `yaml:"walls"`
	Items      []SpriteConfig         `yaml:"items"`
	Enemies    []EnemyConfig          `yaml:"enemies"`
	Rules      RulesConfig            `yaml:"rules"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
	Sprites    map[string]SpriteStyle `yaml:"sprites"` // Terminal palette keyed by image
}

// WorldConfig defines the world size and loop rate.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // 0 = engine default
}

// AssetsConfig names the scene's background images and music.
type AssetsConfig struct {
	Background string `yaml:"background"`
	Victory    string `yaml:"victory"`
	Defeat     string `yaml:"defeat"`
	Audio      string `yaml:"audio"`
}

// RectConfig is a plain rectangle, used for walls.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteConfig is a rectangle drawn with an image.
type SpriteConfig struct {
	RectConfig `yaml:",inline"`
	Image      string `yaml:"image"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	SpriteConfig `yaml:",inline"`
	Speed        float64 `yaml:"speed"` // World units per tick
}

// EnemyConfig defines a hostile character and its patrol route.
type EnemyConfig struct {
	SpriteConfig `yaml:",inline"`
	Solid        bool         `yaml:"solid"`
	Patrol       []PatrolStep `yaml:"patrol"`
}

// PatrolStep is one leg of an enemy patrol, repeated in order forever.
type PatrolStep struct {
	Direction string  `yaml:"direction"` // up, down, left or right
	Amount    float64 `yaml:"amount"`
	Speed     float64 `yaml:"speed"`
}

// RulesConfig defines how a scene is won or lost.
type RulesConfig struct {
	CollectAll bool `yaml:"collect_all"` // Victory once every item is collected
	SurviveMs  int  `yaml:"survive_ms"`  // Victory after surviving this long (0 = off)
	StopOnEnd  bool `yaml:"stop_on_end"` // Stop the loop on victory or defeat
}

// SpriteStyle is how the terminal host draws an image.
type SpriteStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a scene.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "items", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Items collected or ticks at which max difficulty is reached
}

// ScalingConfig defines how difficulty affects enemies.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Max additional enemy speed (0.5 = +50%)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset parses a preset name. The empty string means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (expected easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.6
	default:
		return 0.3
	}
}

// ApplyPreset modifies the scene's difficulty based on a preset.
func ApplyPreset(s *Scene, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		s.Difficulty.Enabled = false
		return
	}
	s.Difficulty.Enabled = true
	s.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("config: invalid scene")

// Validate checks that the scene can be built.
func (s Scene) Validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("%w: world size %gx%g must be positive", ErrInvalidScene, s.World.Width, s.World.Height)
	}
	if s.World.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate %d must not be negative", ErrInvalidScene, s.World.TickRate)
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %gx%g must be positive", ErrInvalidScene, s.Player.Width, s.Player.Height)
	}
	if s.Player.Speed < 0 {
		return fmt.Errorf("%w: player speed %g must not be negative", ErrInvalidScene, s.Player.Speed)
	}
	for i, w := range s.Walls {
		if w.Width < 0 || w.Height < 0 {
			return fmt.Errorf("%w: wall %d has negative size", ErrInvalidScene, i)
		}
	}
	for i, it := range s.Items {
		if it.Width <= 0 || it.Height <= 0 {
			return fmt.Errorf("%w: item %d size must be positive", ErrInvalidScene, i)
		}
	}
	for i, e := range s.Enemies {
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("%w: enemy %d size must be positive", ErrInvalidScene, i)
		}
		for j, step := range e.Patrol {
			if !validDirection(step.Direction) {
				return fmt.Errorf("%w: enemy %d patrol step %d: unknown direction %q", ErrInvalidScene, i, j, step.Direction)
			}
			if step.Amount <= 0 || step.Speed <= 0 {
				return fmt.Errorf("%w: enemy %d patrol step %d: amount and speed must be positive", ErrInvalidScene, i, j)
			}
		}
	}
	if s.Rules.SurviveMs < 0 {
		return fmt.Errorf("%w: survive_ms %d must not be negative", ErrInvalidScene, s.Rules.SurviveMs)
	}
	if s.Rules.CollectAll && len(s.Items) == 0 {
		return fmt.Errorf("%w: collect_all needs at least one item", ErrInvalidScene)
	}
	switch s.Difficulty.Progression.Type {
	case "", "none", "items", "time":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidScene, s.Difficulty.Progression.Type)
	}
	return nil
}

func validDirection(d string) bool {
	switch strings.ToLower(d) {
	case "up", "down", "left", "right":
		return true
	}
	return false
}
