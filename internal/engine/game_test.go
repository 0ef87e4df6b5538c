package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

func TestNewDefaults(t *testing.T) {
	g := New(Options{})

	w := g.Bounds()
	if w.Width != DefaultWidth || w.Height != DefaultHeight {
		t.Errorf("Bounds() = %vx%v, expected %vx%v", w.Width, w.Height, DefaultWidth, DefaultHeight)
	}
	if g.TickRate() != DefaultTickRate {
		t.Errorf("TickRate() = %d, expected %d", g.TickRate(), DefaultTickRate)
	}
	if g.Interval() != time.Second/30 {
		t.Errorf("Interval() = %v, expected %v", g.Interval(), time.Second/30)
	}
	if g.Running() {
		t.Error("new game should not be running")
	}
	if g.Outcome() != OutcomeNone {
		t.Errorf("Outcome() = %v, expected none", g.Outcome())
	}
}

func TestStartWithoutHost(t *testing.T) {
	g := New(Options{})
	if err := g.Start(); !errors.Is(err, ErrNoHost) {
		t.Errorf("Start() error = %v, expected ErrNoHost", err)
	}
}

func TestStartAcquireError(t *testing.T) {
	host := newFakeHost()
	host.acquireErr = errors.New("no canvas")
	g := New(Options{Host: host})

	if err := g.Start(); err == nil {
		t.Fatal("Start() should fail when the surface cannot be acquired")
	}
	if g.Running() {
		t.Error("game should not be running after a failed start")
	}
}

func TestStartStop(t *testing.T) {
	host := newFakeHost()
	media := &fakeMedia{}
	g := New(Options{TickRate: 60, Host: host})
	g.SetAudio(media)

	if err := g.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}

	if host.acquired != 1 {
		t.Errorf("surface acquired %d times, expected 1", host.acquired)
	}
	if host.bound != KeyHandler(g) {
		t.Error("keys should be bound to the game")
	}
	if host.interval != time.Second/60 {
		t.Errorf("scheduled interval = %v, expected %v", host.interval, time.Second/60)
	}
	if media.plays != 1 {
		t.Errorf("media played %d times, expected 1", media.plays)
	}

	host.fire(3)
	if g.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", g.Ticks())
	}

	g.Stop()
	g.Stop()
	host.fire(3)

	if g.Running() {
		t.Error("game should be stopped")
	}
	if host.cancels != 1 {
		t.Errorf("cancel called %d times, expected 1", host.cancels)
	}
	if media.pauses != 1 {
		t.Errorf("media paused %d times, expected 1", media.pauses)
	}
	if g.Ticks() != 3 {
		t.Errorf("Ticks() after stop = %d, expected 3", g.Ticks())
	}

	// Restarting reuses the surface.
	if err := g.Start(); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	if host.acquired != 1 {
		t.Errorf("surface acquired %d times after restart, expected 1", host.acquired)
	}
	if media.plays != 2 {
		t.Errorf("media played %d times after restart, expected 2", media.plays)
	}
}

func TestStopWithoutStart(t *testing.T) {
	g := New(Options{})
	g.SetAudio(&fakeMedia{})
	g.Stop()
	if g.Running() {
		t.Error("Stop() should leave the game stopped")
	}
}

func TestMediaErrorsAreSwallowed(t *testing.T) {
	host := newFakeHost()
	media := &fakeMedia{err: errMedia}
	g := New(Options{Host: host})
	g.SetAudio(media)

	if err := g.Start(); err != nil {
		t.Fatalf("Start() error = %v, expected media errors to be ignored", err)
	}
	g.Stop()
	if media.plays != 1 || media.pauses != 1 {
		t.Errorf("plays=%d pauses=%d, expected 1 each", media.plays, media.pauses)
	}
}

func TestTickOrder(t *testing.T) {
	host := newFakeHost()
	g := New(Options{Width: 100, Height: 50, Host: host})

	var log []string
	g.Add(&tracer{name: "a", log: &log})
	g.Add(&tracer{name: "b", log: &log})
	g.EveryFrame(func() { log = append(log, "frame 1") })
	g.EveryFrame(func() { log = append(log, "frame 2") })

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	host.fire(1)

	expected := []string{"update a", "render a", "update b", "render b", "frame 1", "frame 2"}
	if !reflect.DeepEqual(log, expected) {
		t.Errorf("tick order = %v, expected %v", log, expected)
	}
	if len(host.surface.calls) == 0 || host.surface.calls[0] != "clear 100x50" {
		t.Errorf("surface calls = %v, expected a leading clear 100x50", host.surface.calls)
	}
}

func TestTickWithoutSurface(t *testing.T) {
	g := New(Options{})
	var log []string
	g.Add(&tracer{name: "a", log: &log})

	g.Tick()

	if !reflect.DeepEqual(log, []string{"update a"}) {
		t.Errorf("log = %v, expected only the update", log)
	}
}

func TestAddDuringTick(t *testing.T) {
	g := New(Options{})
	var log []string
	late := &tracer{name: "late", log: &log}
	first := &tracer{name: "first", log: &log}
	first.hook = func() {
		if g.Ticks() == 1 {
			g.Add(late)
		}
	}
	g.Add(first)

	g.Tick()
	if !reflect.DeepEqual(log, []string{"update first"}) {
		t.Errorf("tick 1 = %v, expected late entity to wait", log)
	}

	log = nil
	g.Tick()
	if !reflect.DeepEqual(log, []string{"update first", "update late"}) {
		t.Errorf("tick 2 = %v, expected both entities", log)
	}
}

func TestRemoveDuringTick(t *testing.T) {
	g := New(Options{})
	var log []string
	victim := &tracer{name: "victim", log: &log}
	killer := &tracer{name: "killer", log: &log}
	killer.hook = func() { g.Remove(victim) }
	g.Add(killer)
	g.Add(victim)

	g.Tick()

	if !reflect.DeepEqual(log, []string{"update killer"}) {
		t.Errorf("log = %v, expected the removed entity to be skipped", log)
	}
	if n := len(g.Entities()); n != 1 {
		t.Errorf("len(Entities()) = %d, expected 1", n)
	}
}

func TestRemove(t *testing.T) {
	g := New(Options{})
	a := NewWall(0, 0, 1, 1)
	b := NewWall(1, 1, 1, 1)
	c := NewWall(2, 2, 1, 1)
	g.Add(a)
	g.Add(b)
	g.Add(c)

	if !g.Remove(b) {
		t.Error("Remove(b) = false, expected true")
	}
	if g.Remove(b) {
		t.Error("second Remove(b) = true, expected false")
	}

	got := g.Entities()
	if len(got) != 2 || got[0] != Entity(a) || got[1] != Entity(c) {
		t.Errorf("Entities() = %v, expected [a c]", got)
	}
}

func TestEveryFrameCancel(t *testing.T) {
	g := New(Options{})
	var calls []string

	first := g.EveryFrame(func() {
		calls = append(calls, "first")
	})
	second := g.EveryFrame(func() {
		calls = append(calls, "second")
	})

	g.Tick()
	first.Cancel()
	first.Cancel()
	g.Tick()

	expected := []string{"first", "second", "second"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if first.Active() {
		t.Error("cancelled subscription should not be active")
	}
	if !second.Active() {
		t.Error("second subscription should still be active")
	}
}

func TestCancelDuringTick(t *testing.T) {
	g := New(Options{})
	var calls []string

	var later *Subscription
	g.EveryFrame(func() {
		calls = append(calls, "canceller")
		later.Cancel()
	})
	later = g.EveryFrame(func() {
		calls = append(calls, "later")
	})

	g.Tick()

	if !reflect.DeepEqual(calls, []string{"canceller"}) {
		t.Errorf("calls = %v, expected the cancelled callback to be skipped", calls)
	}
}

func TestRegisterDuringTick(t *testing.T) {
	g := New(Options{})
	count := 0
	var registered bool

	g.EveryFrame(func() {
		if !registered {
			registered = true
			g.EveryFrame(func() { count++ })
		}
	})

	g.Tick()
	if count != 0 {
		t.Errorf("count after tick 1 = %d, expected 0", count)
	}
	g.Tick()
	if count != 1 {
		t.Errorf("count after tick 2 = %d, expected 1", count)
	}
}

func TestEveryInterval(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		period   time.Duration
		ticks    int
		expected []int // ticks on which the callback fired
	}{
		{"100ms at 30fps", 30, 100 * time.Millisecond, 7, []int{3, 6}},
		{"drift preserved", 30, 50 * time.Millisecond, 6, []int{2, 3, 5, 6}},
		{"period below tick", 10, 40 * time.Millisecond, 2, []int{1, 1, 2, 2, 2}},
		{"zero period", 30, 0, 3, []int{1, 2, 3}},
		{"one second at 60fps", 60, time.Second, 121, []int{60, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Options{TickRate: tt.tickRate})
			var fired []int
			g.EveryInterval(tt.period, func() {
				fired = append(fired, int(g.Ticks()))
			})

			for i := 0; i < tt.ticks; i++ {
				g.Tick()
			}

			if !reflect.DeepEqual(fired, tt.expected) {
				t.Errorf("fired on ticks %v, expected %v", fired, tt.expected)
			}
		})
	}
}

func TestEveryIntervalCancel(t *testing.T) {
	g := New(Options{TickRate: 30})
	count := 0
	sub := g.EveryInterval(100*time.Millisecond, func() { count++ })

	for i := 0; i < 3; i++ {
		g.Tick()
	}
	sub.Cancel()
	for i := 0; i < 6; i++ {
		g.Tick()
	}

	if count != 1 {
		t.Errorf("count = %d, expected 1", count)
	}
}

func TestKeyForwarding(t *testing.T) {
	host := newFakeHost()
	g := New(Options{Host: host})
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	presses := 0
	g.OnKeyPress("space", func() { presses++ })

	host.bound.KeyDown(core.KeySpace)
	host.bound.KeyDown(core.KeySpace)
	if !g.IsKeyHeld("space") {
		t.Error("space should be held")
	}
	host.bound.KeyUp(core.KeySpace)
	host.bound.KeyDown(core.KeySpace)

	if presses != 2 {
		t.Errorf("presses = %d, expected 2", presses)
	}
	if held := g.HeldKeys(); !reflect.DeepEqual(held, []string{"space"}) {
		t.Errorf("HeldKeys() = %v, expected [space]", held)
	}
}

func TestOutcomeBackgrounds(t *testing.T) {
	host := newFakeHost()
	g := New(Options{Host: host})
	g.SetBackground("field.png")
	g.SetVictoryBackground("win.png")
	g.SetDefeatBackground("lose.png")

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if host.surface.background != "field.png" {
		t.Errorf("surface background = %q, expected field.png on acquire", host.surface.background)
	}

	g.DeclareVictory()
	if g.Background() != "win.png" || host.surface.background != "win.png" {
		t.Errorf("Background() = %q, surface = %q, expected win.png", g.Background(), host.surface.background)
	}
	if g.Outcome() != OutcomeVictory {
		t.Errorf("Outcome() = %v, expected victory", g.Outcome())
	}
	if !g.Running() {
		t.Error("declaring an outcome should not stop the loop")
	}

	g.DeclareDefeat()
	if g.Background() != "lose.png" {
		t.Errorf("Background() = %q, expected lose.png", g.Background())
	}
	if g.Outcome().String() != "defeat" {
		t.Errorf("Outcome().String() = %q, expected defeat", g.Outcome().String())
	}
}

func TestOutcomeRepaintsWhenStoppedInTick(t *testing.T) {
	host := newFakeHost()
	g := New(Options{Width: 100, Height: 50, Host: host})
	g.SetVictoryBackground("win.png")
	g.Add(NewCharacter(CharacterOptions{X: 1, Y: 2, Width: 3, Height: 4, Image: "hero.png"}))
	g.EveryFrame(func() {
		g.DeclareVictory()
		g.Stop()
	})

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	host.surface.calls = nil
	host.fire(1)

	expected := []string{
		"clear 100x50", "image hero.png 1,2 3x4",
		"clear 100x50", "image hero.png 1,2 3x4",
	}
	if !reflect.DeepEqual(host.surface.calls, expected) {
		t.Errorf("surface calls = %v, expected %v", host.surface.calls, expected)
	}
	if host.surface.background != "win.png" || g.Running() {
		t.Errorf("background = %q, running = %v, expected win.png and stopped", host.surface.background, g.Running())
	}
}

func TestSetBackgroundOutsideTickRepaints(t *testing.T) {
	host := newFakeHost()
	g := New(Options{Width: 100, Height: 50, Host: host})
	g.Add(NewCharacter(CharacterOptions{Width: 5, Height: 5, Image: "hero.png"}))

	g.SetBackground("early.png") // no surface yet
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.Stop()
	host.surface.calls = nil

	g.SetBackground("paused.png")

	expected := []string{"clear 100x50", "image hero.png 0,0 5x5"}
	if !reflect.DeepEqual(host.surface.calls, expected) {
		t.Errorf("surface calls = %v, expected %v", host.surface.calls, expected)
	}
	if host.surface.background != "paused.png" {
		t.Errorf("surface background = %q, expected paused.png", host.surface.background)
	}
}

func TestGameCollisionThroughTick(t *testing.T) {
	g := New(Options{Width: 200, Height: 100})
	hero := NewCharacter(CharacterOptions{X: 5, Y: 5, Width: 10, Height: 10})
	g.Add(NewWall(20, 0, 5, 100))
	g.Add(hero)

	hero.SetDestination(DirRight, 100, 4)
	for i := 0; i < 10; i++ {
		g.Tick()
	}

	// 5 -> 9 on the first tick, then every step into the wall is reverted.
	if x, _ := hero.Position(); x != 9 {
		t.Errorf("hero x = %v, expected 9", x)
	}
	if hero.IsMoving() {
		t.Error("hero should not be moving while pressed against the wall")
	}
}
