package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts map keys to actions and actions to engine commands, so every backend
// shares the same control scheme.
type Action int

const (
	ActionNone     Action = iota
	ActionJump            // Space, W, Up - jump, or start a run when not running
	ActionDuck            // S, Down - duck while held
	ActionStopDuck        // synthesized when the duck key is released
	ActionRestart         // R key - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionStopDuck:
		return "StopDuck"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
