package core

// Action is a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionSwing          // Space - swing at the pitch in flight
	ActionRestart        // R - new game after game over
	ActionScores         // S - results table after game over
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwing:
		return "Swing"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
