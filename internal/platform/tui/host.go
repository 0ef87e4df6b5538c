package tui

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamebuilder/internal/core"
	"github.com/vovakirdan/gamebuilder/internal/engine"
)

// ErrAlreadyAcquired is returned when a second game asks for the surface.
var ErrAlreadyAcquired = errors.New("tui: surface already acquired")

// Host is an engine.Host backed by the Bubble Tea event loop.
//
// Every, KeyDown and KeyUp are only called from Update, so the host needs no
// locking. Scheduling does not start a timer by itself: the model collects the
// pending command with TakeCmd after each message.
type Host struct {
	cfg     core.RuntimeConfig
	palette Palette
	logger  *log.Logger
	now     func() time.Time

	surface *Surface
	keys    engine.KeyHandler

	gen      uint64
	fn       func()
	interval time.Duration
	pending  bool

	held map[core.KeyCode]time.Time // last key-down per held key
}

// NewHost creates a terminal host. The surface uses the whole screen except
// the bottom status line.
func NewHost(cfg core.RuntimeConfig, palette Palette, logger *log.Logger) *Host {
	if cfg.KeyRelease <= 0 {
		cfg.KeyRelease = core.DefaultConfig().KeyRelease
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		cfg:     cfg,
		palette: palette,
		logger:  logger,
		now:     time.Now,
		held:    make(map[core.KeyCode]time.Time),
	}
}

// Acquire creates the cell surface for the world.
func (h *Host) Acquire(width, height float64) (engine.Surface, error) {
	if h.surface != nil {
		return nil, ErrAlreadyAcquired
	}
	h.surface = NewSurface(width, height, h.cfg.ScreenW, playRows(h.cfg.ScreenH), h.palette)
	return h.surface, nil
}

// Surface returns the acquired surface, or nil.
func (h *Host) Surface() *Surface { return h.surface }

// BindKeys routes terminal key events to k.
func (h *Host) BindKeys(k engine.KeyHandler) {
	h.keys = k
}

// Every schedules fn on the Bubble Tea loop. Starting a new schedule or
// cancelling bumps the generation, so in-flight ticks of the old schedule
// are ignored.
func (h *Host) Every(interval time.Duration, fn func()) func() {
	h.gen++
	gen := h.gen
	h.fn = fn
	h.interval = interval
	h.pending = true
	h.logger.Debug("tick scheduled", "gen", gen, "interval", interval)

	return func() {
		if h.gen != gen {
			return
		}
		h.gen++
		h.fn = nil
		h.pending = false
		h.logger.Debug("tick cancelled", "gen", gen)
	}
}

// TakeCmd returns the command that starts a newly scheduled tick loop, or nil.
func (h *Host) TakeCmd() tea.Cmd {
	if !h.pending {
		return nil
	}
	h.pending = false
	return tickCmd(h.gen, h.interval)
}

// HandleTick runs the scheduled function for a tick of the current
// generation and returns the command for the next tick.
func (h *Host) HandleTick(msg TickMsg) tea.Cmd {
	if msg.Gen != h.gen || h.fn == nil {
		return nil
	}
	gen := msg.Gen
	h.fn()

	// fn may have cancelled or replaced the schedule.
	if h.gen != gen || h.fn == nil {
		return nil
	}
	return tickCmd(gen, h.interval)
}

// HandleKey forwards a terminal key press. Terminals report no key release,
// so every press (including auto-repeat) re-arms a release timer.
func (h *Host) HandleKey(msg tea.KeyMsg) tea.Cmd {
	code, ok := KeyCode(msg)
	if !ok || h.keys == nil {
		return nil
	}

	seen := h.now()
	h.held[code] = seen
	h.keys.KeyDown(code)
	return releaseCmd(code, seen, h.cfg.KeyRelease)
}

// handleRelease releases a key unless it was pressed again since the timer
// was armed.
func (h *Host) handleRelease(msg releaseMsg) {
	last, ok := h.held[msg.Code]
	if !ok || !last.Equal(msg.Seen) {
		return
	}
	delete(h.held, msg.Code)
	if h.keys != nil {
		h.keys.KeyUp(msg.Code)
	}
}

// Resize adapts the surface to a new terminal size.
func (h *Host) Resize(cols, rows int) {
	h.cfg.ScreenW = cols
	h.cfg.ScreenH = rows
	if h.surface != nil {
		h.surface.Resize(cols, playRows(rows))
	}
}

// playRows is the number of rows left for the world below the status line.
func playRows(rows int) int {
	if rows > 1 {
		return rows - 1
	}
	return rows
}
