package core

// Action represents a semantic input, abstracted from physical key presses.
// The platform maps keys to actions; the simulation only sees actions.
type Action int

const (
	ActionNone   Action = iota
	ActionThrust        // Space - hold to climb, release to fall, tap to start/restart
	ActionQuit          // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
