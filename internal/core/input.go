package core

// Side is a move: which end of the line to grab from, or a pass.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
	SidePass  Side = 2
)

// Valid reports whether s names an end of the line (passing excluded).
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SidePass:
		return "pass"
	default:
		return "unknown"
	}
}

// Action represents a console command, abstracted from the letter typed.
// This lets the game react to intents rather than raw text.
type Action int

const (
	ActionNone       Action = iota
	ActionQuit              // q - quit the game and terminate
	ActionNewGame           // n - abandon and start a fresh game
	ActionShowTime          // t - remaining time for both players
	ActionShowParams        // p - game parameters
	ActionShowRules         // r - rules text
	ActionShowLine          // s - current number line
	ActionListCommands      // c - command list
	ActionUnknown           // anything else
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionNewGame:
		return "NewGame"
	case ActionShowTime:
		return "ShowTime"
	case ActionShowParams:
		return "ShowParams"
	case ActionShowRules:
		return "ShowRules"
	case ActionShowLine:
		return "ShowLine"
	case ActionListCommands:
		return "ListCommands"
	case ActionUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// InputKind says whether an Input carries a move or a command.
type InputKind int

const (
	InputBlank InputKind = iota // nothing typed
	InputMove
	InputCommand
)

// Input is a single line read from a move source, already classified.
type Input struct {
	Kind   InputKind
	Side   Side   // set when Kind == InputMove
	Action Action // set when Kind == InputCommand
	Raw    string
}

// MoveInput builds a move input.
func MoveInput(s Side) Input {
	return Input{Kind: InputMove, Side: s}
}

// CommandInput builds a command input.
func CommandInput(a Action) Input {
	return Input{Kind: InputCommand, Action: a}
}
