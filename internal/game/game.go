// Package game runs a match of Number Grab: it owns the configuration, the
// live number line and both players, drives the alternating turn loop, keeps
// time, and decides the winner.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/logging"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

// ExitCode is the status the host is terminated with when a game ends,
// whatever the reason.
const ExitCode = 1

// Display receives everything the game shows to the players.
type Display interface {
	ShowLine(line *numberline.Line)
	Say(msg string)
	Warn(msg string)
	ShowRules()
	ShowCommands()
	ShowHint()
	ShowParameters(cfg Config)
	ShowRemainingTime(p1, p2 float64)
	ShowOutcome(r Result)
}

// Option customises a Game.
type Option func(*Game)

// WithLogger sets the debug sink. The default discards everything.
func WithLogger(r *logging.Reporter) Option {
	return func(g *Game) { g.log = r }
}

// WithRecorder stores every finished game.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithExit replaces os.Exit as the way the game terminates its host.
func WithExit(exit func(code int)) Option {
	return func(g *Game) { g.exit = exit }
}

// WithStopwatch replaces the wall-clock stopwatch factory.
func WithStopwatch(f func() Stopwatch) Option {
	return func(g *Game) { g.newStopwatch = f }
}

// Game is a single match.
type Game struct {
	id      string
	cfg     Config
	rng     *rand.Rand
	line    *numberline.Line
	players [2]Player
	current core.PlayerID

	source       MoveSource
	display      Display
	log          *logging.Reporter
	recorder     Recorder
	exit         func(code int)
	newStopwatch func() Stopwatch
	opts         []Option

	next *Game // set when a player asks for a new game
}

// New creates a game. The line is drawn immediately from the seeded
// generator, so two games with the same non-negative seed are identical.
// A negative seed is replaced by one taken from the clock, and Config
// reports the seed actually used.
func New(cfg Config, source MoveSource, display Display, opts ...Option) (*Game, error) {
	if cfg.Seed < 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &Game{
		id:           uuid.NewString(),
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		current:      core.Player1,
		source:       source,
		display:      display,
		log:          logging.Nop(),
		exit:         os.Exit,
		newStopwatch: NewStopwatch,
		opts:         opts,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.createPlayers(); err != nil {
		return nil, err
	}
	g.line = numberline.New(cfg.Length, cfg.Max, g.rng)

	g.log.Debugf(1, "game %s: seed=%d length=%d max=%d mode=%s", g.id, cfg.Seed, cfg.Length, cfg.Max, cfg.Mode())
	return g, nil
}

func (g *Game) createPlayers() error {
	if !g.cfg.SinglePlayer {
		g.players[0] = NewHuman(core.Player1)
		g.players[1] = NewHuman(core.Player2)
		return nil
	}

	strategy, err := registry.Create(g.cfg.Difficulty)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	human, machine := core.Player1, core.Player2
	if g.cfg.HumanIsPlayer2 {
		human, machine = core.Player2, core.Player1
	}
	g.players[human.Index()] = NewHuman(human)
	g.players[machine.Index()] = NewMachine(machine, strategy)
	return nil
}

// ID returns the unique identifier of this game.
func (g *Game) ID() string { return g.id }

// Config returns the rules this game was created with.
func (g *Game) Config() Config { return g.cfg }

// Line returns the live number line.
func (g *Game) Line() *numberline.Line { return g.line }

// Player returns the player in seat id.
func (g *Game) Player(id core.PlayerID) Player { return g.players[id.Index()] }

// Play runs the game to its end, reports and records the outcome, and then
// terminates the host through the exit function. If a player starts a new
// game, that game is played instead and its result returned.
func (g *Game) Play() Result {
	start := time.Now()
	res := g.run()
	res.Duration = time.Since(start)

	g.record(res)

	if res.Reason == ReasonRestarted && g.next != nil {
		return g.next.Play()
	}
	if res.Reason != ReasonQuit && res.Reason != ReasonRestarted {
		g.display.ShowOutcome(res)
	}
	g.exit(ExitCode)
	return res
}

// run is the turn loop. It returns as soon as the game is over.
func (g *Game) run() Result {
	g.display.ShowLine(g.line)
	for !g.over() {
		player := g.players[g.current.Index()]

		var sw Stopwatch
		if g.cfg.Timed {
			sw = g.newStopwatch()
			sw.Start()
		}

		err := player.Move(g.turn())

		if sw != nil {
			player.addElapsed(sw.Elapsed().Seconds())
			sw.Stop()
			sw.Reset()
		}

		switch {
		case errors.Is(err, errRestart):
			return g.interrupted(ReasonRestarted)
		case err != nil:
			g.log.Debugf(1, "game %s: %v", g.id, err)
			return g.interrupted(ReasonQuit)
		}

		g.display.ShowLine(g.line)
		if g.over() {
			break
		}
		g.current = g.current.Opponent()
		g.line.Swap()
	}
	return g.outcome()
}

func (g *Game) turn() *Turn {
	return &Turn{
		Line:         g.line,
		Config:       g.cfg,
		Env:          registry.Env{Rand: g.rng, Log: g.log},
		Source:       g.source,
		Display:      g.display,
		NewStopwatch: g.newStopwatch,
		Command:      g.command,
	}
}

// over reports whether the line is exhausted or, in timed mode, both
// players have run past the budget.
func (g *Game) over() bool {
	if g.line.IsEmpty() {
		return true
	}
	if g.cfg.Timed {
		return g.timedOut(core.Player1) && g.timedOut(core.Player2)
	}
	return false
}

func (g *Game) timedOut(id core.PlayerID) bool {
	return g.players[id.Index()].Elapsed() > g.cfg.TimeBudget
}

// outcome decides the winner. In timed mode running out of time decides the
// game regardless of the totals; otherwise the higher total wins and equal
// totals are a tie.
func (g *Game) outcome() Result {
	res := g.snapshot(ReasonLineEmpty)

	if g.cfg.Timed {
		p1Out, p2Out := g.timedOut(core.Player1), g.timedOut(core.Player2)
		switch {
		case p1Out && p2Out:
			res.Reason = ReasonBothTimedOut
			return res
		case p1Out:
			res.Reason, res.TimedOut = ReasonOneTimedOut, core.Player1
			res.Winner, res.HasWinner = core.Player2, true
			return res
		case p2Out:
			res.Reason, res.TimedOut = ReasonOneTimedOut, core.Player2
			res.Winner, res.HasWinner = core.Player1, true
			return res
		}
	}

	switch {
	case res.Totals[0] > res.Totals[1]:
		res.Winner, res.HasWinner = core.Player1, true
	case res.Totals[0] < res.Totals[1]:
		res.Winner, res.HasWinner = core.Player2, true
	}
	return res
}

func (g *Game) interrupted(reason Reason) Result {
	res := g.snapshot(reason)
	res.By = g.current
	return res
}

func (g *Game) snapshot(reason Reason) Result {
	return Result{
		ID:     g.id,
		Reason: reason,
		Totals: [2]int{g.line.Total(core.Player1), g.line.Total(core.Player2)},
		Times:  [2]float64{g.players[0].Elapsed(), g.players[1].Elapsed()},
	}
}

func (g *Game) record(res Result) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.SaveSummary(summarize(g.cfg, res)); err != nil {
		g.log.Warn("could not record result", "game", g.id, "error", err)
	}
}
