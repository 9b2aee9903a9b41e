package baseball

import (
	"context"
	"errors"
	"testing"
	"time"
)

// pollScript answers poll i with presses[i]; polls past the end report no
// swing. errAt makes that poll fail.
type pollScript struct {
	presses []bool
	errAt   int
	polls   int
	started time.Duration
}

func (p *pollScript) PollSwing() (bool, error) {
	i := p.polls
	p.polls++
	if p.errAt > 0 && i == p.errAt {
		return true, errors.New("poll failed")
	}
	if i < len(p.presses) {
		return p.presses[i], nil
	}
	return false, nil
}

func (p *pollScript) StartWindow(travel time.Duration) {
	p.started = travel
}

func pressAt(polls ...int) []bool {
	n := 0
	for _, p := range polls {
		n = max(n, p+1)
	}
	out := make([]bool, n)
	for _, p := range polls {
		out[p] = true
	}
	return out
}

func TestWindowNoSwing(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	p := &pollScript{}
	w := NewWindowSampler(p, clock)

	got := w.Sample(context.Background(), 300*time.Millisecond)
	if got != NoSwing {
		t.Errorf("Sample() = %+v, want NoSwing", got)
	}
	if p.started != 300*time.Millisecond {
		t.Errorf("StartWindow got %v, want 300ms", p.started)
	}
	// elapsed 0, 10, ..., 300
	if p.polls != 31 {
		t.Errorf("polled %d times, want 31", p.polls)
	}
}

func TestWindowFirstSwingWins(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	p := &pollScript{presses: pressAt(4, 9, 20)}
	w := NewWindowSampler(p, clock)

	got := w.Sample(context.Background(), 300*time.Millisecond)
	if got != SwingAt(40*time.Millisecond) {
		t.Errorf("Sample() = %+v, want swing at 40ms", got)
	}
}

func TestWindowPollErrorIgnored(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	p := &pollScript{presses: pressAt(25), errAt: 3}
	w := NewWindowSampler(p, clock)

	got := w.Sample(context.Background(), 300*time.Millisecond)
	if got != SwingAt(250*time.Millisecond) {
		t.Errorf("Sample() = %+v, want swing at 250ms", got)
	}
}

func TestWindowLateLatch(t *testing.T) {
	// The loop checks the previous pass's elapsed value, so a 305ms pitch
	// gets one more poll at 310ms.
	clock := NewManualClock(time.Unix(0, 0))
	p := &pollScript{presses: pressAt(31)}
	w := NewWindowSampler(p, clock)

	travel := 305 * time.Millisecond
	got := w.Sample(context.Background(), travel)
	if got != SwingAt(310*time.Millisecond) {
		t.Fatalf("Sample() = %+v, want swing at 310ms", got)
	}

	e := NewAtBatEngine(&scriptRand{})
	if o := e.Classify(travel, got); o.Kind != SwingingStrike {
		t.Errorf("late latch classified as %v, want SwingingStrike", o.Kind)
	}
}

func TestWindowOnTick(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	w := NewWindowSampler(&pollScript{}, clock)

	var ticks []time.Duration
	w.OnTick = func(elapsed, travel time.Duration) {
		ticks = append(ticks, elapsed)
	}
	w.Sample(context.Background(), 50*time.Millisecond)

	want := []time.Duration{0, 10, 20, 30, 40, 50}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i := range want {
		if ticks[i] != want[i]*time.Millisecond {
			t.Errorf("tick %d = %v, want %v", i, ticks[i], want[i]*time.Millisecond)
		}
	}
}

func TestWindowCancelled(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	p := &pollScript{presses: pressAt(5)}
	w := NewWindowSampler(p, clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := w.Sample(ctx, 300*time.Millisecond)
	if got != NoSwing {
		t.Errorf("Sample() = %+v, want NoSwing", got)
	}
	if p.polls != 1 {
		t.Errorf("polled %d times after cancel, want 1", p.polls)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewManualClock(start)

	if err := c.Sleep(context.Background(), time.Second); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	c.Advance(-time.Second)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("elapsed = %v, want 1s", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Sleep(ctx, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on cancelled ctx = %v, want context.Canceled", err)
	}
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("cancelled Sleep advanced the clock to %v", got)
	}
}

func TestSystemClockSleepCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	begin := time.Now()
	if err := (SystemClock{}).Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep = %v, want context.Canceled", err)
	}
	if time.Since(begin) > time.Second {
		t.Error("Sleep did not return promptly on cancel")
	}
}
