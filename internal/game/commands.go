package game

import (
	"fmt"

	"github.com/vovakirdan/number-grab/internal/core"
)

// command runs a console command typed by a human. Quit and new game end
// the current game by returning an error; everything else only displays
// something, and the player is asked for a move again.
func (g *Game) command(by core.PlayerID, a core.Action) error {
	g.log.Debugf(2, "game %s: %s issued %s", g.id, by, a)

	switch a {
	case core.ActionQuit:
		g.display.Say(fmt.Sprintf("%s has quit.", by))
		return ErrQuit

	case core.ActionNewGame:
		g.display.Say(fmt.Sprintf("%s has started a new game.", by))
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		next, err := New(cfg, g.source, g.display, g.opts...)
		if err != nil {
			return err
		}
		g.next = next
		return errRestart

	case core.ActionShowTime:
		g.display.ShowRemainingTime(
			g.cfg.TimeBudget-g.players[0].Elapsed(),
			g.cfg.TimeBudget-g.players[1].Elapsed(),
		)

	case core.ActionShowParams:
		g.display.ShowParameters(g.cfg)

	case core.ActionShowRules:
		g.display.ShowRules()

	case core.ActionShowLine:
		g.display.ShowLine(g.line)

	case core.ActionListCommands:
		g.display.ShowCommands()

	default:
		g.display.ShowHint()
	}
	return nil
}
