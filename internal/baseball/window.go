package baseball

import (
	"context"
	"time"
)

// DefaultTick is the poll resolution of the pitch window.
const DefaultTick = 10 * time.Millisecond

// Swing is the sampled input of one pitch window.
type Swing struct {
	Swung   bool
	Elapsed time.Duration // time from pitch release to the first swing
}

// NoSwing is the sample of a window with no swing event.
var NoSwing = Swing{}

// SwingAt returns a sample of a swing at elapsed.
func SwingAt(elapsed time.Duration) Swing {
	return Swing{Swung: true, Elapsed: elapsed}
}

// SwingPoller reports whether a swing event arrived since the last poll.
// PollSwing must not block.
type SwingPoller interface {
	PollSwing() (bool, error)
}

// WindowStarter is implemented by pollers that need to know when a pitch
// window opens, e.g. to drop key presses made before the pitch.
type WindowStarter interface {
	StartWindow(travel time.Duration)
}

// PitchSampler produces the swing sample for a pitch in flight for travel.
type PitchSampler interface {
	Sample(ctx context.Context, travel time.Duration) Swing
}

// WindowSampler samples swings with a fixed-resolution poll loop.
type WindowSampler struct {
	Poller SwingPoller
	Clock  Clock
	Tick   time.Duration

	// OnTick, if set, is called once per loop pass with the elapsed time.
	OnTick func(elapsed, travel time.Duration)
}

// NewWindowSampler returns a sampler polling p every DefaultTick on c.
func NewWindowSampler(p SwingPoller, c Clock) *WindowSampler {
	return &WindowSampler{Poller: p, Clock: c, Tick: DefaultTick}
}

// Sample runs the pitch window. The first swing event wins; later events
// in the same window are ignored. A failed poll counts as no swing for
// that pass. The loop condition uses the elapsed value read on the previous
// pass, so the latched time may land just past travel.
func (w *WindowSampler) Sample(ctx context.Context, travel time.Duration) Swing {
	tick := w.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	if ws, ok := w.Poller.(WindowStarter); ok {
		ws.StartWindow(travel)
	}

	start := w.Clock.Now()
	latch := NoSwing
	var elapsed time.Duration

	for elapsed < travel {
		elapsed = w.Clock.Now().Sub(start)
		if w.OnTick != nil {
			w.OnTick(elapsed, travel)
		}

		if pressed, err := w.Poller.PollSwing(); err == nil && pressed && !latch.Swung {
			latch = SwingAt(elapsed)
		}

		if err := w.Clock.Sleep(ctx, tick); err != nil {
			break
		}
	}
	return latch
}

// FixedSampler returns the same sample for every pitch. Useful for tests
// and for replaying a known timing.
type FixedSampler struct {
	Swing Swing
}

// Sample returns the fixed swing.
func (f FixedSampler) Sample(context.Context, time.Duration) Swing {
	return f.Swing
}

// SamplerFunc adapts a function to PitchSampler.
type SamplerFunc func(ctx context.Context, travel time.Duration) Swing

// Sample calls f.
func (f SamplerFunc) Sample(ctx context.Context, travel time.Duration) Swing {
	return f(ctx, travel)
}
