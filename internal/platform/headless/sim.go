package headless

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
	"github.com/vovakirdan/tui-baseball/internal/config"
)

// DefaultMaxPitches stops runaway games. A CPU batter that never misses
// can keep a half inning going forever.
const DefaultMaxPitches = 5000

// ErrPitchLimit is returned when a game is stopped at Options.MaxPitches.
var ErrPitchLimit = errors.New("headless: pitch limit reached")

// Options controls a headless game.
type Options struct {
	Seed       int64               // RNG seed; 0 means seed from the current time
	Instant    bool                // run on a manual clock that never sleeps
	MaxPitches int                 // 0 means DefaultMaxPitches, negative means no limit
	Logger     *log.Logger         // play-by-play; nil discards it
	Sink       baseball.RenderSink // optional extra sink
}

// Sim is one headless game ready to be played.
type Sim struct {
	machine *baseball.Machine
	log     *LogSink
	limit   int
	stopped bool
	cancel  context.CancelFunc
}

// New builds a game between two CPU batters.
func New(cfg config.BaseballConfig, opts Options) *Sim {
	cfg = cfg.Normalize()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var clock baseball.Clock = baseball.SystemClock{}
	if opts.Instant {
		clock = baseball.NewManualClock(time.Unix(0, 0))
		cfg.Timing.Pacing = 0
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	limit := opts.MaxPitches
	if limit == 0 {
		limit = DefaultMaxPitches
	}

	s := &Sim{log: NewLogSink(logger), limit: limit}

	// The batter and the engine share one stream so a seed replays a game.
	batter := baseball.NewAutoBatter(rng, clock, cfg.CPU.Skill, cfg.CPU.TakeRate)
	sampler := baseball.NewWindowSampler(batter, clock)
	sampler.Tick = cfg.Tick()

	sinks := baseball.MultiSink{s.log, limiter{s}}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}

	s.machine = baseball.NewMachine(cfg.MachineConfig(), baseball.NewAtBatEngine(rng), sampler, clock, sinks)
	return s
}

// Play runs the game to the end. A game stopped at the pitch limit
// returns its partial result with ErrPitchLimit.
func (s *Sim) Play(ctx context.Context) (baseball.Result, error) {
	ctx, s.cancel = context.WithCancel(ctx)
	defer s.cancel()

	res, err := s.machine.Play(ctx)
	if err != nil && s.stopped {
		return res, ErrPitchLimit
	}
	return res, err
}

// Last returns the final snapshot of the game.
func (s *Sim) Last() baseball.Snapshot {
	return s.log.Last()
}

// limiter cancels the game once it has thrown too many pitches.
type limiter struct {
	sim *Sim
}

func (l limiter) Render(snap baseball.Snapshot) {
	s := l.sim
	if s.limit > 0 && snap.Pitches >= s.limit && !s.stopped && s.cancel != nil {
		s.stopped = true
		s.cancel()
	}
}

func (l limiter) Message(string) {}

// Play is a shorthand for New(cfg, opts).Play(ctx).
func Play(ctx context.Context, cfg config.BaseballConfig, opts Options) (baseball.Result, error) {
	return New(cfg, opts).Play(ctx)
}
