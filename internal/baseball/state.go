package baseball

import "fmt"

// GameState is the complete persistent state of one game. The Machine owns
// it; everything else sees copies via Snapshot.
type GameState struct {
	Teams        [2]string
	Score        [2]int
	LineScore    [][2]int // runs per inning, indexed [inning-1][side]
	Inning       int
	Half         Half
	Outs         int
	Count        Count
	Bases        Bases
	TotalInnings int
	Over         bool
}

// NewGameState returns the state of a game that has not thrown a pitch yet.
func NewGameState(innings int, visitor, home string) GameState {
	if innings < 1 {
		innings = DefaultInnings
	}
	return GameState{
		Teams:        [2]string{visitor, home},
		Inning:       1,
		Half:         Top,
		TotalInnings: innings,
	}
}

// Batting returns the side currently at the plate.
func (s *GameState) Batting() Side {
	return s.Half.Batting()
}

// Tied reports whether both sides have the same number of runs.
func (s *GameState) Tied() bool {
	return s.Score[Visitor] == s.Score[Home]
}

// Leader returns the side with strictly more runs. ok is false on a tie.
func (s *GameState) Leader() (side Side, ok bool) {
	switch {
	case s.Score[Home] > s.Score[Visitor]:
		return Home, true
	case s.Score[Visitor] > s.Score[Home]:
		return Visitor, true
	default:
		return Visitor, false
	}
}

// credit adds runs to the batting side and to the current inning's line.
func (s *GameState) credit(runs int) {
	if runs <= 0 {
		return
	}
	side := s.Batting()
	s.Score[side] += runs
	s.ensureLine()
	s.LineScore[s.Inning-1][side] += runs
}

// ensureLine grows the line score so the current inning has a slot.
func (s *GameState) ensureLine() {
	for len(s.LineScore) < s.Inning {
		s.LineScore = append(s.LineScore, [2]int{})
	}
}

// GameStateType names the coarse phase of the game for renderers.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is an immutable copy of the game state handed to render sinks.
type Snapshot struct {
	Teams        [2]string
	Score        [2]int
	LineScore    [][2]int
	Inning       int
	Half         Half
	Outs         int
	Strikes      int
	Balls        int
	Bases        Bases
	TotalInnings int
	Pitches      int
	State        GameStateType
}

// Snapshot returns a copy of s that shares no memory with it.
func (s GameState) Snapshot() Snapshot {
	line := make([][2]int, len(s.LineScore))
	copy(line, s.LineScore)

	state := StatePlaying
	if s.Over {
		state = StateGameOver
	}

	return Snapshot{
		Teams:        s.Teams,
		Score:        s.Score,
		LineScore:    line,
		Inning:       s.Inning,
		Half:         s.Half,
		Outs:         s.Outs,
		Strikes:      s.Count.Strikes,
		Balls:        s.Count.Balls,
		Bases:        s.Bases,
		TotalInnings: s.TotalInnings,
		State:        state,
	}
}

// BattingTeam returns the name of the team at the plate.
func (s Snapshot) BattingTeam() string {
	return s.Teams[s.Half.Batting()]
}

// Leader returns the side with strictly more runs. ok is false on a tie.
func (s Snapshot) Leader() (side Side, ok bool) {
	g := GameState{Score: s.Score}
	return g.Leader()
}

// InningLabel returns "Top 1" style text.
func (s Snapshot) InningLabel() string {
	return fmt.Sprintf("%s %d", s.Half.Short(), s.Inning)
}

// HalfInningBanner returns the message announced at the start of a half.
func HalfInningBanner(h Half, inning int) string {
	return fmt.Sprintf("%s of the %d inning.", h, inning)
}
