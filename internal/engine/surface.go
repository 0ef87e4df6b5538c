package engine

import (
	"time"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// Surface is the drawing target a Game renders into every tick.
// Coordinates are world coordinates; images are asset references (paths or
// names) whose loading is left entirely to the implementation.
type Surface interface {
	// Clear erases the whole world area.
	Clear(width, height float64)

	// DrawImage draws the image scaled to the given rectangle.
	DrawImage(image string, x, y, w, h float64)

	// BeginPath starts a new path, discarding any unstroked points.
	BeginPath()

	// MoveTo starts a new sub-path at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a segment from the current point to (x, y).
	LineTo(x, y float64)

	// Stroke draws the current path.
	Stroke()
}

// BackgroundSurface is a Surface that can show a background image behind
// everything drawn on it.
type BackgroundSurface interface {
	Surface
	SetBackground(image string)
}

// Media is a playable media handle, typically background music.
type Media interface {
	Play() error
	Pause() error
}

// KeyHandler receives key events from a host.
type KeyHandler interface {
	KeyDown(code core.KeyCode)
	KeyUp(code core.KeyCode)
}

// Scheduler runs a function at a fixed interval on the host's event queue.
type Scheduler interface {
	// Every calls fn every interval until cancel is called. Calling cancel
	// more than once is safe.
	Every(interval time.Duration, fn func()) (cancel func())
}

// Host is the environment a Game runs in: it owns the drawing surface,
// delivers key events and schedules ticks.
type Host interface {
	Scheduler

	// Acquire returns the surface for a world of the given size.
	Acquire(width, height float64) (Surface, error)

	// BindKeys routes the host's key events to h.
	BindKeys(h KeyHandler)
}
