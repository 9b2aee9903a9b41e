// Package baseball implements the at-bat engine and the game state machine
// for Terminal League Baseball. It has no terminal or Bubble Tea dependencies:
// drawing goes through a RenderSink and swings come from a SwingPoller.
package baseball

// Game rule constants.
const (
	MaxStrikes     = 3
	MaxBalls       = 4
	MaxOuts        = 3
	BasesCount     = 3
	DefaultInnings = 3
)

// Side identifies a team by its batting order in the game.
type Side int

const (
	Visitor Side = iota
	Home
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Visitor:
		return "Visitor"
	case Home:
		return "Home"
	default:
		return "Unknown"
	}
}

// Half is the half of an inning.
type Half int

const (
	Top Half = iota
	Bottom
)

// String returns "Top" or "Bottom".
func (h Half) String() string {
	if h == Bottom {
		return "Bottom"
	}
	return "Top"
}

// Short returns the three-letter scoreboard label.
func (h Half) Short() string {
	if h == Bottom {
		return "Bot"
	}
	return "Top"
}

// Batting returns the side at the plate during this half.
func (h Half) Batting() Side {
	if h == Bottom {
		return Home
	}
	return Visitor
}

// HitClass is the kind of base hit. Its value is the number of bases the
// batter and every runner advance.
type HitClass int

const (
	Single HitClass = iota + 1
	Double
	Triple
	HomeRun
)

// String returns the hit name.
func (c HitClass) String() string {
	switch c {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Triple:
		return "Triple"
	case HomeRun:
		return "Home Run"
	default:
		return "Unknown"
	}
}

// OutcomeKind tags a PitchOutcome.
type OutcomeKind int

const (
	CalledStrike OutcomeKind = iota
	SwingingStrike
	Hit
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case CalledStrike:
		return "CalledStrike"
	case SwingingStrike:
		return "SwingingStrike"
	case Hit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// PitchOutcome is the result of one pitch. Hit is only meaningful when
// Kind is Hit.
type PitchOutcome struct {
	Kind OutcomeKind
	Hit  HitClass
}

// IsStrike reports whether the pitch added a strike to the count.
func (o PitchOutcome) IsStrike() bool {
	return o.Kind == CalledStrike || o.Kind == SwingingStrike
}

// Message returns the status line announced for this outcome.
func (o PitchOutcome) Message() string {
	switch o.Kind {
	case CalledStrike:
		return MsgCalledStrike
	case SwingingStrike:
		return MsgSwingingStrike
	}
	switch o.Hit {
	case HomeRun:
		return MsgHomeRun
	case Triple:
		return MsgTriple
	case Double:
		return MsgDouble
	default:
		return MsgSingle
	}
}

// Status messages pushed to the render sink.
const (
	MsgReady          = "Pitcher is ready... Press SPACE to swing!"
	MsgHomeRun        = "HOME RUN!!!"
	MsgTriple         = "TRIPLE! A shot to the gap!"
	MsgDouble         = "DOUBLE! Down the line!"
	MsgSingle         = "SINGLE! A base hit."
	MsgSwingingStrike = "SWING AND A MISS! Strike!"
	MsgCalledStrike   = "Called Strike!"
	MsgStrikeout      = "STRIKEOUT!"
	MsgWalk           = "WALK! Take your base."
	MsgExtraInnings   = "TIE GAME! We are going to extra innings!"
	MsgGameOver       = "GAME OVER!"
	MsgTie            = "IT'S A TIE!"
)

// Count is the balls and strikes on the current batter.
type Count struct {
	Strikes int
	Balls   int
}

// Bases holds first, second and third base occupancy, in that order.
type Bases [BasesCount]bool

// Occupied returns the number of runners on base.
func (b Bases) Occupied() int {
	n := 0
	for _, on := range b {
		if on {
			n++
		}
	}
	return n
}
