package baseball

import (
	"context"
	"fmt"
	"time"
)

// Message hold times at normal pace.
const (
	holdReady     = 100 * time.Millisecond
	holdStrike    = 1500 * time.Millisecond
	holdHit       = 2000 * time.Millisecond
	holdStrikeout = 2000 * time.Millisecond
	holdWalk      = 2000 * time.Millisecond
	holdBanner    = 2000 * time.Millisecond
	holdExtra     = 2500 * time.Millisecond

	DefaultWindUp = 500 * time.Millisecond
)

// MachineConfig is the opaque configuration the machine reads at start.
type MachineConfig struct {
	Innings int
	Visitor string
	Home    string

	// WindUp is the pause between the ready prompt and the pitch release.
	WindUp time.Duration
	// Pacing scales every message hold and the wind-up. 0 disables them.
	Pacing float64
}

// DefaultMachineConfig returns a three-inning game at normal pace.
func DefaultMachineConfig() MachineConfig {
	return MachineConfig{
		Innings: DefaultInnings,
		Visitor: "New York Yankees",
		Home:    "Boston Red Sox",
		WindUp:  DefaultWindUp,
		Pacing:  1.0,
	}
}

// AtBatKind is how a plate appearance ended.
type AtBatKind int

const (
	AtBatStrikeout AtBatKind = iota
	AtBatHit
	AtBatWalk
	AtBatInterrupted
)

// String returns a human-readable name for the at-bat kind.
func (k AtBatKind) String() string {
	switch k {
	case AtBatStrikeout:
		return "Strikeout"
	case AtBatHit:
		return "Hit"
	case AtBatWalk:
		return "Walk"
	case AtBatInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// AtBatResult summarizes one plate appearance.
type AtBatResult struct {
	Kind    AtBatKind
	Hit     HitClass
	Runs    int
	Pitches int
}

// Play is one completed plate appearance, in game order.
type Play struct {
	Inning      int
	Half        Half
	Batting     Side
	Kind        AtBatKind
	Hit         HitClass
	Runs        int
	Description string
}

// Result is the final (or interrupted) outcome of a game.
type Result struct {
	Teams     [2]string
	Score     [2]int
	LineScore [][2]int
	Innings   int
	Winner    Side
	Tie       bool
	Complete  bool
	Pitches   int
	Plays     []Play
}

// Summary returns the game-over line: "<team> WIN!" or "IT'S A TIE!".
func (r Result) Summary() string {
	if r.Tie {
		return MsgTie
	}
	return fmt.Sprintf("%s WIN!", r.Teams[r.Winner])
}

// Machine owns a game's state and applies pitch outcomes to it.
type Machine struct {
	state   GameState
	engine  *AtBatEngine
	sampler PitchSampler
	clock   Clock
	sink    RenderSink

	windUp  time.Duration
	pacing  float64
	pitches int
	plays   []Play
}

// NewMachine creates a machine at the top of the first inning. A nil sink
// discards output.
func NewMachine(cfg MachineConfig, engine *AtBatEngine, sampler PitchSampler, clock Clock, sink RenderSink) *Machine {
	if sink == nil {
		sink = NopSink{}
	}
	if cfg.Pacing < 0 {
		cfg.Pacing = 0
	}
	return &Machine{
		state:   NewGameState(cfg.Innings, cfg.Visitor, cfg.Home),
		engine:  engine,
		sampler: sampler,
		clock:   clock,
		sink:    sink,
		windUp:  cfg.WindUp,
		pacing:  cfg.Pacing,
	}
}

// State returns a copy of the current game state.
func (m *Machine) State() GameState {
	s := m.state
	s.LineScore = append([][2]int(nil), m.state.LineScore...)
	return s
}

// Play runs the game to completion. It returns ctx.Err() if the context is
// cancelled first, along with the partial result.
func (m *Machine) Play(ctx context.Context) (Result, error) {
	for m.state.Inning <= m.state.TotalInnings {
		m.StartHalfInning()
		if err := m.say(ctx, HalfInningBanner(m.state.Half, m.state.Inning), holdBanner); err != nil {
			return m.Result(), err
		}

		for m.state.Outs < MaxOuts {
			if res := m.RunAtBat(ctx); res.Kind == AtBatInterrupted {
				return m.Result(), ctx.Err()
			}
		}

		if m.EndHalfInning(ctx) {
			break
		}
	}
	if err := ctx.Err(); err != nil {
		return m.Result(), err
	}

	m.state.Over = true
	m.render()
	res := m.Result()
	m.sink.Message(MsgGameOver + " " + res.Summary())
	return res, nil
}

// StartHalfInning clears outs, the count and the bases.
func (m *Machine) StartHalfInning() {
	m.state.Outs = 0
	m.state.Count = Count{}
	m.state.Bases = Bases{}
	m.state.ensureLine()
	m.render()
}

// RunAtBat pitches to one batter until a hit, a strikeout, or a walk.
func (m *Machine) RunAtBat(ctx context.Context) AtBatResult {
	m.state.Count = Count{}
	m.render()

	pitches := 0
	for {
		if ctx.Err() != nil {
			return AtBatResult{Kind: AtBatInterrupted, Pitches: pitches}
		}
		if err := m.say(ctx, MsgReady, holdReady); err != nil {
			return AtBatResult{Kind: AtBatInterrupted, Pitches: pitches}
		}
		if err := m.pause(ctx, m.windUp); err != nil {
			return AtBatResult{Kind: AtBatInterrupted, Pitches: pitches}
		}

		p := m.engine.Pitch(ctx, m.sampler)
		if ctx.Err() != nil {
			return AtBatResult{Kind: AtBatInterrupted, Pitches: pitches}
		}
		pitches++
		m.pitches++

		if p.Outcome.Kind == Hit {
			//nolint:errcheck // a cancelled hold still applies the hit
			m.say(ctx, p.Outcome.Message(), holdHit)
			runs := m.AdvanceRunners(p.Outcome.Hit)
			m.record(AtBatHit, p.Outcome.Hit, runs, p.Outcome.Message())
			m.render()
			return AtBatResult{Kind: AtBatHit, Hit: p.Outcome.Hit, Runs: runs, Pitches: pitches}
		}

		m.state.Count.Strikes++
		//nolint:errcheck // checked at the top of the loop
		m.say(ctx, p.Outcome.Message(), holdStrike)
		m.render()

		if res, done := m.settleCount(ctx); done {
			res.Pitches = pitches
			return res
		}
	}
}

// settleCount ends the at-bat when the count calls for it. The walk branch
// is reserved: no current outcome adds a ball, so balls never reach four.
// A future Ball outcome only needs to increment Count.Balls.
func (m *Machine) settleCount(ctx context.Context) (AtBatResult, bool) {
	if m.state.Count.Strikes >= MaxStrikes {
		m.state.Outs++
		m.state.Count = Count{}
		m.record(AtBatStrikeout, 0, 0, MsgStrikeout)
		m.render()
		//nolint:errcheck // the at-bat is over either way
		m.say(ctx, MsgStrikeout, holdStrikeout)
		return AtBatResult{Kind: AtBatStrikeout}, true
	}
	if m.state.Count.Balls >= MaxBalls {
		runs := m.advanceOnWalk()
		m.state.Count = Count{}
		m.record(AtBatWalk, 0, runs, MsgWalk)
		m.render()
		//nolint:errcheck // the at-bat is over either way
		m.say(ctx, MsgWalk, holdWalk)
		return AtBatResult{Kind: AtBatWalk, Runs: runs}, true
	}
	return AtBatResult{}, false
}

// AdvanceRunners moves every runner class bases, one base at a time from
// third down to first, then places the batter. A home run scores the
// batter. Runs go to the batting side; the number scored is returned.
func (m *Machine) AdvanceRunners(class HitClass) int {
	b := &m.state.Bases
	runs := 0
	for i := 0; i < int(class); i++ {
		if b[2] {
			runs++
			b[2] = false
		}
		if b[1] {
			b[2] = true
			b[1] = false
		}
		if b[0] {
			b[1] = true
			b[0] = false
		}
	}

	switch {
	case class >= Single && class <= Triple:
		b[class-1] = true
	case class == HomeRun:
		runs++
	}

	m.state.credit(runs)
	return runs
}

// advanceOnWalk puts the batter on first and pushes forced runners along.
func (m *Machine) advanceOnWalk() int {
	b := &m.state.Bases
	runs := 0
	if b[0] {
		if b[1] {
			if b[2] {
				runs++
			}
			b[2] = true
		}
		b[1] = true
	}
	b[0] = true

	m.state.credit(runs)
	return runs
}

// EndHalfInning switches sides and reports whether the game is over.
//
// Once the inning counter passes TotalInnings, a tie extends the game by one
// inning only when the half just switched to is the top. In normal play the
// counter can only pass TotalInnings right after a bottom half, so ties
// always extend; any other arrival past the limit ends the game, tied or not.
func (m *Machine) EndHalfInning(ctx context.Context) bool {
	if m.state.Half == Top {
		m.state.Half = Bottom
	} else {
		m.state.Half = Top
		m.state.Inning++
	}
	m.render()

	if m.state.Inning <= m.state.TotalInnings {
		return false
	}
	if m.state.Tied() && m.state.Half == Top {
		m.state.TotalInnings++
		m.render()
		//nolint:errcheck // Play checks ctx after the half ends
		m.say(ctx, MsgExtraInnings, holdExtra)
		return false
	}
	return true
}

// Result builds the result from the current state.
func (m *Machine) Result() Result {
	winner, ok := m.state.Leader()
	return Result{
		Teams:     m.state.Teams,
		Score:     m.state.Score,
		LineScore: append([][2]int(nil), m.state.LineScore...),
		Innings:   len(m.state.LineScore),
		Winner:    winner,
		Tie:       !ok,
		Complete:  m.state.Over,
		Pitches:   m.pitches,
		Plays:     append([]Play(nil), m.plays...),
	}
}

func (m *Machine) record(kind AtBatKind, hit HitClass, runs int, desc string) {
	m.plays = append(m.plays, Play{
		Inning:      m.state.Inning,
		Half:        m.state.Half,
		Batting:     m.state.Batting(),
		Kind:        kind,
		Hit:         hit,
		Runs:        runs,
		Description: desc,
	})
}

func (m *Machine) render() {
	snap := m.state.Snapshot()
	snap.Pitches = m.pitches
	m.sink.Render(snap)
}

// say announces text and holds it on screen for the paced duration.
func (m *Machine) say(ctx context.Context, text string, hold time.Duration) error {
	m.sink.Message(text)
	return m.pause(ctx, hold)
}

func (m *Machine) pause(ctx context.Context, d time.Duration) error {
	return m.clock.Sleep(ctx, time.Duration(float64(d)*m.pacing))
}
