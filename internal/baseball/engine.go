package baseball

import (
	"context"
	"time"
)

// Pitch travel time is drawn uniformly from [pitchMinMS, pitchMinMS+pitchSpanMS).
const (
	pitchMinMS  = 250
	pitchSpanMS = 250
)

// RandomSource draws uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// PitchResult is everything the engine decided about one pitch.
type PitchResult struct {
	Travel  time.Duration
	Swing   Swing
	Outcome PitchOutcome
}

// AtBatEngine resolves single pitches. It holds no game state.
type AtBatEngine struct {
	rng RandomSource
}

// NewAtBatEngine returns an engine drawing from rng. The source should be
// seeded once per game, not per pitch.
func NewAtBatEngine(rng RandomSource) *AtBatEngine {
	return &AtBatEngine{rng: rng}
}

// PitchTravel draws how long the next pitch is in flight.
func (e *AtBatEngine) PitchTravel() time.Duration {
	return time.Duration(pitchMinMS+e.rng.Intn(pitchSpanMS)) * time.Millisecond
}

// GoodSwing reports whether a swing at elapsed lands in the last quarter of
// a pitch in flight for travel. Both ends are inclusive.
func GoodSwing(elapsed, travel time.Duration) bool {
	return elapsed*4 >= travel*3 && elapsed <= travel
}

// HitClassFor maps a roll in [0, 100) to a hit class:
// 5% home run, 10% triple, 20% double, 65% single.
func HitClassFor(roll int) HitClass {
	switch {
	case roll < 5:
		return HomeRun
	case roll < 15:
		return Triple
	case roll < 35:
		return Double
	default:
		return Single
	}
}

// Classify turns a swing sample into an outcome. A good swing draws the hit
// class from the engine's random source.
func (e *AtBatEngine) Classify(travel time.Duration, s Swing) PitchOutcome {
	if !s.Swung {
		return PitchOutcome{Kind: CalledStrike}
	}
	if !GoodSwing(s.Elapsed, travel) {
		return PitchOutcome{Kind: SwingingStrike}
	}
	return PitchOutcome{Kind: Hit, Hit: HitClassFor(e.rng.Intn(100))}
}

// Pitch throws one pitch: draws its travel time, samples the swing over
// that window and classifies it.
func (e *AtBatEngine) Pitch(ctx context.Context, sampler PitchSampler) PitchResult {
	travel := e.PitchTravel()
	swing := sampler.Sample(ctx, travel)
	return PitchResult{
		Travel:  travel,
		Swing:   swing,
		Outcome: e.Classify(travel, swing),
	}
}
