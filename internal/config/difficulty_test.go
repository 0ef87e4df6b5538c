package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name      string
		cfg       DifficultyConfig
		collected int
		ticks     uint64
		expected  float64
	}{
		{"disabled", DifficultyConfig{InitialLevel: 0.3}, 5, 1000, 0.3},
		{"none", DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none"}}, 5, 1000, 0.2},
		{"items half", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "items", MaxAt: 4}}, 2, 0, 0.5},
		{"items capped", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "items", MaxAt: 4}}, 10, 0, 1.0},
		{"time from initial", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "time", MaxAt: 100}}, 0, 50, 0.75},
		{"zero max", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time"}}, 0, 1, 1.0},
		{"initial above range", DifficultyConfig{InitialLevel: 2}, 0, 0, 1.0},
		{"initial below range", DifficultyConfig{InitialLevel: -1}, 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if got := d.Level(tt.collected, tt.ticks); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "items", MaxAt: 2},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Speed(3, 0, 0); got != 3 {
		t.Errorf("Speed() at level 0 = %v, expected 3", got)
	}
	if got := d.Speed(3, 2, 0); got != 6 {
		t.Errorf("Speed() at level 1 = %v, expected 6", got)
	}
}
