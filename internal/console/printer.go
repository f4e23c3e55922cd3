package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-grab/internal/game"
	"github.com/vovakirdan/number-grab/internal/numberline"
)

// Rules is the text printed by --rules and the r command.
const Rules = `
--GAME RULES--
Welcome to Number Grab! The aim of the game is to
outsmart and outcompete your opponent. The rules are simple.
The game board is line of numbers, and you and your
opponent take turns grabbing a number from either end of the
number line and adding that number to your totals. Whoever has
the largest total when the line is empty wins! Be careful,
just picking the biggest number isn't the best strategy!
To make a move, simply enter 0 to grab a number from the left
side of the line, 1 to grab one from the right, or 2 to pass
the turn if passing is enabled. You can also enter c to view
a list of commands.
`

// Commands lists what can be typed at the move prompt.
const Commands = `
Commands:
0 : grab a number from the left.
1 : grab a number from the right.
2 : pass the turn (if enabled).
q : quit the game and terminate the program.
n : quit and start a new game.
t : show the remaining time for both players.
p : show game parameters.
r : print the game rules.
s : print the number line.
`

// Hint is shown for input that is neither a move nor a command.
const Hint = "Enter 0, 1 or 2 to make a move, or 'c' for a list of commands."

// Printer writes the game to a terminal. It implements game.Display.
type Printer struct {
	w io.Writer

	line   lipgloss.Style
	warn   lipgloss.Style
	title  lipgloss.Style
	banner lipgloss.Style
	dim    lipgloss.Style
}

var _ game.Display = (*Printer)(nil)

// NewPrinter creates a printer for w. A nil renderer selects one that
// detects the colour profile of w.
func NewPrinter(w io.Writer, r *lipgloss.Renderer) *Printer {
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return &Printer{
		w:      w,
		line:   r.NewStyle().Foreground(lipgloss.Color("86")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("203")),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		banner: r.NewStyle().Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// ShowLine prints the totals and the remaining values.
func (p *Printer) ShowLine(l *numberline.Line) {
	p.println(p.line.Render(l.String()))
}

// Say prints an informational message.
func (p *Printer) Say(msg string) {
	p.println(msg)
}

// Warn prints a rejected move or a forfeited turn.
func (p *Printer) Warn(msg string) {
	p.println(p.warn.Render(msg))
}

// ShowRules prints the rules of the game.
func (p *Printer) ShowRules() {
	fmt.Fprint(p.w, Rules+"\n")
}

// ShowCommands prints the command list.
func (p *Printer) ShowCommands() {
	fmt.Fprint(p.w, Commands+"\n")
}

// ShowHint prints the reminder of what may be typed.
func (p *Printer) ShowHint() {
	p.println(p.dim.Render(Hint))
}

// ShowParameters prints the settings of the running game.
func (p *Printer) ShowParameters(cfg game.Config) {
	fmt.Fprintf(p.w, "\n%s\nRNG Seed: %d.\nInitial line length: %d\nMaximum number value: %d\nTotal time allowed: %.2f\nAI difficulty: %d\n\n",
		p.title.Render("--Game Parameters:"), cfg.Seed, cfg.Length, cfg.Max, cfg.TimeBudget, cfg.Difficulty)
}

// ShowRemainingTime prints what is left of each player's time budget.
func (p *Printer) ShowRemainingTime(p1, p2 float64) {
	fmt.Fprintf(p.w, "Player 1 has %.2f seconds left and Player 2 has %.2f seconds left.\n", p1, p2)
}

// ShowOutcome prints the winner and the final scores.
func (p *Printer) ShowOutcome(r game.Result) {
	if r.Reason == game.ReasonLineEmpty {
		p.println("")
	}
	p.println(p.banner.Render(Verdict(r)))
	fmt.Fprintf(p.w, "Final scores: P1 - %d\n              P2 - %d\n\n", r.Totals[0], r.Totals[1])
}

// Verdict is the one-line announcement of how a game ended.
func Verdict(r game.Result) string {
	switch r.Reason {
	case game.ReasonBothTimedOut:
		return "Both players have run out of time! You all lose!"
	case game.ReasonOneTimedOut:
		return fmt.Sprintf("%s has run out of time! %s wins!", r.TimedOut.Title(), r.TimedOut.Opponent().Title())
	case game.ReasonQuit:
		return fmt.Sprintf("%s has quit.", r.By)
	case game.ReasonRestarted:
		return fmt.Sprintf("%s has started a new game.", r.By)
	}
	if !r.HasWinner {
		return "It's a tie! Everyone loses!"
	}
	return fmt.Sprintf("%s wins!", r.Winner.Title())
}
