package baseball

import "time"

// KeyPoller is a SwingPoller fed by a UI goroutine. Press never blocks;
// presses beyond the buffer are dropped.
type KeyPoller struct {
	presses chan struct{}
}

// NewKeyPoller creates a poller with a small press buffer.
func NewKeyPoller() *KeyPoller {
	return &KeyPoller{presses: make(chan struct{}, 8)}
}

// Press records a swing key press.
func (p *KeyPoller) Press() {
	select {
	case p.presses <- struct{}{}:
	default:
	}
}

// PollSwing consumes one pending press, if any.
func (p *KeyPoller) PollSwing() (bool, error) {
	select {
	case <-p.presses:
		return true, nil
	default:
		return false, nil
	}
}

// StartWindow drops presses made before the pitch was released.
func (p *KeyPoller) StartWindow(time.Duration) {
	for {
		select {
		case <-p.presses:
		default:
			return
		}
	}
}

// AutoBatter is a CPU batter. At the start of each window it decides
// whether and when to swing, then fires once when that moment arrives.
type AutoBatter struct {
	rng   RandomSource
	clock Clock

	skill    int // percent chance a swing is aimed at the good window
	takeRate int // percent chance of not swinging at all

	start  time.Time
	target time.Duration
	swing  bool
	fired  bool
}

// NewAutoBatter returns a CPU batter. skill and takeRate are fractions in
// [0, 1].
func NewAutoBatter(rng RandomSource, clock Clock, skill, takeRate float64) *AutoBatter {
	return &AutoBatter{
		rng:      rng,
		clock:    clock,
		skill:    percent(skill),
		takeRate: percent(takeRate),
	}
}

// StartWindow picks the swing moment for a pitch in flight for travel.
func (b *AutoBatter) StartWindow(travel time.Duration) {
	b.start = b.clock.Now()
	b.fired = false
	b.swing = b.rng.Intn(100) >= b.takeRate
	if !b.swing {
		return
	}

	ms := int(travel / time.Millisecond)
	windowStart := (ms*3 + 3) / 4 // first whole millisecond inside the window
	if b.rng.Intn(100) < b.skill {
		b.target = time.Duration(windowStart+b.rng.Intn(ms-windowStart+1)) * time.Millisecond
		return
	}
	b.target = time.Duration(b.rng.Intn(max(windowStart, 1))) * time.Millisecond
}

// PollSwing fires once the chosen moment has passed.
func (b *AutoBatter) PollSwing() (bool, error) {
	if !b.swing || b.fired {
		return false, nil
	}
	if b.clock.Now().Sub(b.start) < b.target {
		return false, nil
	}
	b.fired = true
	return true, nil
}

func percent(f float64) int {
	p := int(f * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
