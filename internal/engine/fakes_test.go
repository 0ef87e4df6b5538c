package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// fakeSurface records draw calls as strings.
type fakeSurface struct {
	calls      []string
	background string
}

func (s *fakeSurface) Clear(w, h float64) { s.calls = append(s.calls, fmt.Sprintf("clear %gx%g", w, h)) }
func (s *fakeSurface) DrawImage(img string, x, y, w, h float64) {
	s.calls = append(s.calls, fmt.Sprintf("image %s %g,%g %gx%g", img, x, y, w, h))
}
func (s *fakeSurface) BeginPath()          { s.calls = append(s.calls, "begin") }
func (s *fakeSurface) MoveTo(x, y float64) { s.calls = append(s.calls, fmt.Sprintf("move %g,%g", x, y)) }
func (s *fakeSurface) LineTo(x, y float64) { s.calls = append(s.calls, fmt.Sprintf("line %g,%g", x, y)) }
func (s *fakeSurface) Stroke()             { s.calls = append(s.calls, "stroke") }
func (s *fakeSurface) SetBackground(img string) {
	s.background = img
}

// fakeHost never fires on its own; tests drive ticks through fire.
type fakeHost struct {
	surface    *fakeSurface
	acquireErr error
	acquired   int
	bound      KeyHandler
	interval   time.Duration
	fn         func()
	cancels    int
}

func newFakeHost() *fakeHost {
	return &fakeHost{surface: &fakeSurface{}}
}

func (h *fakeHost) Acquire(w, hgt float64) (Surface, error) {
	if h.acquireErr != nil {
		return nil, h.acquireErr
	}
	h.acquired++
	return h.surface, nil
}

func (h *fakeHost) BindKeys(k KeyHandler) { h.bound = k }

func (h *fakeHost) Every(interval time.Duration, fn func()) func() {
	h.interval = interval
	h.fn = fn
	return func() {
		h.fn = nil
		h.cancels++
	}
}

// fire simulates the scheduler firing n times.
func (h *fakeHost) fire(n int) {
	for i := 0; i < n; i++ {
		if h.fn == nil {
			return
		}
		h.fn()
	}
}

type fakeMedia struct {
	plays, pauses int
	err           error
}

func (m *fakeMedia) Play() error  { m.plays++; return m.err }
func (m *fakeMedia) Pause() error { m.pauses++; return m.err }

var errMedia = errors.New("media unavailable")

// tracer is a minimal entity that records its update order.
type tracer struct {
	name string
	log  *[]string
	rect core.Rect
	hook func()
}

func (p *tracer) Update(World) {
	*p.log = append(*p.log, "update "+p.name)
	if p.hook != nil {
		p.hook()
	}
}
func (p *tracer) Render(Surface)    { *p.log = append(*p.log, "render "+p.name) }
func (p *tracer) Bounds() core.Rect { return p.rect }
func (p *tracer) Passable() bool    { return true }
func (p *tracer) Visible() bool     { return true }
