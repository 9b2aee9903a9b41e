// Package headless plays games without a terminal: a CPU batter at the
// plate and a charmbracelet/log play-by-play.
package headless

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
)

// LogSink writes every announcement as a structured log line.
type LogSink struct {
	logger *log.Logger
	last   baseball.Snapshot
}

// NewLogSink returns a sink logging to l.
func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Render remembers the snapshot so the next message can describe it.
func (s *LogSink) Render(snap baseball.Snapshot) {
	s.last = snap
}

// Message logs text with the inning, count and score it was made in.
// The per-pitch ready prompt is debug output.
func (s *LogSink) Message(text string) {
	snap := s.last
	if text == baseball.MsgReady {
		s.logger.Debug(text, "pitch", snap.Pitches+1)
		return
	}

	s.logger.Info(text,
		"inning", snap.InningLabel(),
		"outs", snap.Outs,
		"count", fmt.Sprintf("%d-%d", snap.Balls, snap.Strikes),
		"score", fmt.Sprintf("%s %d, %s %d",
			snap.Teams[baseball.Visitor], snap.Score[baseball.Visitor],
			snap.Teams[baseball.Home], snap.Score[baseball.Home]),
	)
}

// Last returns the most recent snapshot.
func (s *LogSink) Last() baseball.Snapshot {
	return s.last
}
