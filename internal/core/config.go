package core

import "time"

// RuntimeConfig contains host-level settings passed to platforms at startup.
// Scene configuration (world size, assets, rules) lives in internal/config.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters (terminal host)
	ScreenH    int           // Screen height in characters (terminal host)
	TickRate   int           // Ticks per second override (0 = scene default)
	KeyRelease time.Duration // Idle time after which a held terminal key is released
}

// DefaultKeyRelease outlasts the usual 500ms delay before key auto-repeat
// starts, so a held key is not released and pressed again. The cost is that
// a tapped key stays held this long.
const DefaultKeyRelease = 600 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   0,
		KeyRelease: DefaultKeyRelease,
	}
}
