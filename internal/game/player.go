package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

// FrenzyLimit is how long a human may think in frenzy mode before the move
// is thrown away.
const FrenzyLimit = 3000 * time.Millisecond

var (
	// ErrQuit ends the game at the player's request, or when the move
	// source can no longer supply input.
	ErrQuit = errors.New("game: player quit")

	errRestart = errors.New("game: new game requested")
)

// MoveSource yields classified console input for the player on the move.
// It is expected to prompt and block until a line is available.
type MoveSource interface {
	Next(turn core.PlayerID) (core.Input, error)
}

// Turn is the context a player receives when asked to move. It replaces any
// back-reference from a player to the game.
type Turn struct {
	Line         *numberline.Line
	Config       Config
	Env          registry.Env
	Source       MoveSource
	Display      Display
	NewStopwatch func() Stopwatch

	// Command runs a console command. A non-nil error ends the turn.
	Command func(by core.PlayerID, a core.Action) error
}

// Player is one seat at the table.
type Player interface {
	ID() core.PlayerID
	IsHuman() bool

	// Elapsed returns the decision time accumulated so far, in seconds.
	Elapsed() float64

	// Move makes exactly one decision on t.Line: a grab, a pass, or a
	// forfeited turn. An error means the game is over.
	Move(t *Turn) error

	addElapsed(seconds float64)
}

// seat holds what both kinds of player share.
type seat struct {
	id      core.PlayerID
	elapsed float64
}

func (s *seat) ID() core.PlayerID { return s.id }
func (s *seat) Elapsed() float64 { return s.elapsed }
func (s *seat) addElapsed(seconds float64) { s.elapsed += seconds }

// Human reads moves from the move source.
type Human struct {
	seat
}

// NewHuman creates a human player for id.
func NewHuman(id core.PlayerID) *Human {
	return &Human{seat: seat{id: id}}
}

func (h *Human) IsHuman() bool { return true }

func (h *Human) Move(t *Turn) error {
	var sw Stopwatch
	if t.Config.Frenzy {
		sw = t.NewStopwatch()
		sw.Start()
		defer sw.Stop()
	}

	for {
		in, err := t.Source.Next(h.id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQuit, err)
		}

		switch in.Kind {
		case core.InputBlank:
			continue
		case core.InputCommand:
			if err := t.Command(h.id, in.Action); err != nil {
				return err
			}
			continue
		}

		if in.Side == core.SidePass && !t.Config.Passing {
			t.Display.Warn("Passing is not allowed.")
			continue
		}
		if sw != nil && sw.Elapsed() > FrenzyLimit {
			t.Display.Warn("Too slow! Turn doesn't count!")
			return nil
		}
		if in.Side == core.SidePass {
			t.Display.Say("Turn passed.")
			return nil
		}
		t.Line.Grab(h.id, in.Side)
		return nil
	}
}

// Machine delegates every decision to a strategy.
type Machine struct {
	seat
	strategy registry.Strategy
}

// NewMachine creates a scripted player for id using strategy.
func NewMachine(id core.PlayerID, strategy registry.Strategy) *Machine {
	return &Machine{seat: seat{id: id}, strategy: strategy}
}

func (m *Machine) IsHuman() bool { return false }

func (m *Machine) Move(t *Turn) error {
	side := m.strategy.SelectMove(t.Env, m.id, t.Line)
	t.Display.Say(fmt.Sprintf("Opponent takes the %s number.", side))
	t.Line.Grab(m.id, side)
	return nil
}
