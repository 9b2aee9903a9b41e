package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
)

// Machine events, tagged with the match that produced them so a restarted
// game never sees messages from the previous one.
type (
	snapshotMsg struct {
		match int
		snap  baseball.Snapshot
	}
	messageMsg struct {
		match int
		text  string
	}
	gameDoneMsg struct {
		match  int
		result baseball.Result
		err    error
	}
)

// pitchTracker holds the progress of the pitch in flight. The machine
// goroutine writes it from the sampler loop; View reads it on every frame.
type pitchTracker struct {
	mu       sync.Mutex
	inFlight bool
	progress float64
}

func (p *pitchTracker) update(elapsed, travel time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = true
	if travel > 0 {
		p.progress = float64(elapsed) / float64(travel)
	}
}

func (p *pitchTracker) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	p.progress = 0
}

func (p *pitchTracker) get() (bool, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight, p.progress
}

// chanSink forwards machine output to the Bubble Tea program.
type chanSink struct {
	ctx     context.Context
	match   int
	events  chan<- tea.Msg
	tracker *pitchTracker
}

// Render forwards a snapshot.
func (s *chanSink) Render(snap baseball.Snapshot) {
	s.send(snapshotMsg{match: s.match, snap: snap})
}

// Message forwards a status line. Every message follows the end of a
// pitch window, so the ball is taken off the field here.
func (s *chanSink) Message(text string) {
	s.tracker.stop()
	s.send(messageMsg{match: s.match, text: text})
}

func (s *chanSink) send(msg tea.Msg) {
	select {
	case s.events <- msg:
	case <-s.ctx.Done():
	}
}

// waitForEvent reads the next machine event. A closed channel ends the
// chain of waits.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}
