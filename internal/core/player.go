package core

// PlayerID identifies one of the two seats at the table.
// Player1 always moves first.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index returns 0 for Player1 and 1 for Player2, for use as an array index.
func (p PlayerID) Index() int {
	return int(p)
}

// String returns the short label used in prompts and renderings ("P1", "P2").
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Title returns the long label used in outcome messages.
func (p PlayerID) Title() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown player"
	}
}
