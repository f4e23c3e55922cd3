package game

import (
	"fmt"
	"math"
)

// Config holds the rules of one game. It is fixed once the game is created.
type Config struct {
	Seed           int64   // RNG seed; negative seeds from the clock
	Length         int     // initial number of values in the line
	Max            int     // largest value that can be drawn
	TimeBudget     float64 // total seconds each player may spend; +Inf when untimed
	Difficulty     int     // strategy tier for the scripted opponent
	Frenzy         bool    // forfeit human moves slower than FrenzyLimit
	Timed          bool    // end the game when both players exceed TimeBudget
	Passing        bool    // allow "2" to pass the turn
	SinglePlayer   bool    // one side is a scripted opponent
	HumanIsPlayer2 bool    // with SinglePlayer, the human takes the second seat
}

// DefaultConfig mirrors the command-line defaults.
func DefaultConfig() Config {
	return Config{
		Seed:       -1,
		Length:     20,
		Max:        10,
		TimeBudget: math.Inf(1),
		Difficulty: 2,
	}
}

// Mode describes who is playing, for logs and the results ledger.
func (c Config) Mode() string {
	if !c.SinglePlayer {
		return "two-player"
	}
	if c.HumanIsPlayer2 {
		return fmt.Sprintf("cpu-first-d%d", c.Difficulty)
	}
	return fmt.Sprintf("vs-cpu-d%d", c.Difficulty)
}
