package engine

import "time"

// Subscription is a registered per-frame callback.
type Subscription struct {
	game      *Game
	fn        func()
	cancelled bool
}

// Cancel removes the callback from its game. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.game.unsubscribe(s)
}

// Active reports whether the callback is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}

// EveryFrame registers fn to run once per tick, after all entities have been
// updated and rendered. Callbacks run in registration order; one registered
// during a tick first runs on the next tick.
func (g *Game) EveryFrame(fn func()) *Subscription {
	sub := &Subscription{game: g, fn: fn}
	g.callbacks = append(g.callbacks, sub)
	return sub
}

// EveryInterval registers fn to run whenever period has elapsed, measured in
// fixed tick durations. Leftover time carries into the next period instead of
// being reset, and a tick that covers several periods runs fn once per period.
// A non-positive period runs fn every tick.
func (g *Game) EveryInterval(period time.Duration, fn func()) *Subscription {
	periodMs := float64(period) / float64(time.Millisecond)
	tickMs := g.intervalMs
	var elapsed float64

	return g.EveryFrame(func() {
		if periodMs <= 0 {
			fn()
			return
		}

		elapsed += tickMs
		for elapsed+intervalEpsilon >= periodMs {
			elapsed -= periodMs
			fn()
		}
	})
}

// intervalEpsilon absorbs float rounding so that, for example, three 1000/30 ms
// ticks count as a full 100 ms.
const intervalEpsilon = 1e-9

func (g *Game) unsubscribe(sub *Subscription) {
	for i, s := range g.callbacks {
		if s == sub {
			g.callbacks = append(g.callbacks[:i:i], g.callbacks[i+1:]...)
			return
		}
	}
}
