package game

import (
	"time"

	"github.com/vovakirdan/number-grab/internal/core"
)

// Reason says why a game ended.
type Reason int

const (
	ReasonLineEmpty Reason = iota
	ReasonBothTimedOut
	ReasonOneTimedOut
	ReasonQuit
	ReasonRestarted
)

// String returns the ledger name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonLineEmpty:
		return "line-empty"
	case ReasonBothTimedOut:
		return "both-timed-out"
	case ReasonOneTimedOut:
		return "one-timed-out"
	case ReasonQuit:
		return "quit"
	case ReasonRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished game.
type Result struct {
	ID        string
	Reason    Reason
	Winner    core.PlayerID // valid only when HasWinner
	HasWinner bool
	TimedOut  core.PlayerID // valid only when Reason == ReasonOneTimedOut
	By        core.PlayerID // who quit or restarted
	Totals    [2]int
	Times     [2]float64
	Duration  time.Duration
}

// Tie reports whether the game ran to completion with equal totals.
func (r Result) Tie() bool {
	return r.Reason == ReasonLineEmpty && !r.HasWinner
}

// Summary is the flat record handed to a Recorder.
type Summary struct {
	GameID     string
	Seed       int64
	Length     int
	Max        int
	Difficulty int
	Mode       string
	P1Total    int
	P2Total    int
	Winner     string // "P1", "P2" or empty
	Reason     string
	P1Seconds  float64
	P2Seconds  float64
	Duration   time.Duration
}

// Recorder persists finished games.
type Recorder interface {
	SaveSummary(s Summary) error
}

func summarize(cfg Config, r Result) Summary {
	s := Summary{
		GameID:     r.ID,
		Seed:       cfg.Seed,
		Length:     cfg.Length,
		Max:        cfg.Max,
		Difficulty: cfg.Difficulty,
		Mode:       cfg.Mode(),
		P1Total:    r.Totals[0],
		P2Total:    r.Totals[1],
		Reason:     r.Reason.String(),
		P1Seconds:  r.Times[0],
		P2Seconds:  r.Times[1],
		Duration:   r.Duration,
	}
	if r.HasWinner {
		s.Winner = r.Winner.String()
	}
	return s
}
