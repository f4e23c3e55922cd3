package strategy

import (
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

const (
	// MaxDepth caps the lookahead; cost grows roughly 3^depth.
	MaxDepth = 9

	// marginThreshold is how far a grab must beat the best value it leaves
	// behind for the threshold phase to commit without searching.
	marginThreshold = 4
)

// Hard commits to a grab that clearly beats whatever it exposes, and
// otherwise runs a depth-limited playout of both candidate moves.
type Hard struct{}

func (Hard) Name() string { return "hard" }

func (Hard) SelectMove(env registry.Env, player core.PlayerID, line *numberline.Line) core.Side {
	s := searcher{env: env}
	return s.bestMove(player, line, DepthBudget(line.Size()))
}

// DepthBudget returns min(remaining, MaxDepth).
func DepthBudget(remaining int) int {
	if remaining < MaxDepth {
		return remaining
	}
	return MaxDepth
}

// searcher carries the decision context through the recursion. Every branch
// works on its own copy of the line; nothing is shared between branches.
type searcher struct {
	env registry.Env
}

// bestMove chooses a side for player on line, looking depth half-moves ahead.
func (s searcher) bestMove(player core.PlayerID, line *numberline.Line, depth int) core.Side {
	if line.Size() == 1 {
		return core.SideLeft
	}
	if side, ok := s.threshold(player, line); ok {
		return side
	}
	if depth == 1 {
		return larger(line)
	}
	s.env.Log.Debugf(3, "hard: bestMove called with depth %d", depth)

	line0, line1 := line.Copy(), line.Copy()
	line0.Grab(player, core.SideLeft)
	line1.Grab(player, core.SideRight)

	// A line is worth the negation of the best the opponent can make of it.
	val0 := -s.playout(player.Opponent(), line0, depth-1)
	val1 := -s.playout(player.Opponent(), line1, depth-1)
	s.env.Log.Debugf(2, "hard: val0: %d  val1: %d", val0, val1)

	if val0 > val1 {
		return core.SideLeft
	}
	return core.SideRight
}

// threshold simulates both grabs and measures how much each beats the larger
// of the two ends it leaves exposed. The better side is returned with ok set
// only when that margin reaches marginThreshold. line must hold at least two
// values.
func (s searcher) threshold(player core.PlayerID, line *numberline.Line) (core.Side, bool) {
	line0, line1 := line.Copy(), line.Copy()
	grab0 := line0.Grab(player, core.SideLeft)
	grab1 := line1.Grab(player, core.SideRight)

	dif0 := grab0 - max(line0.First(), line0.Last())
	dif1 := grab1 - max(line1.First(), line1.Last())

	best, bestDif := core.SideLeft, dif0
	if dif1 > dif0 {
		best, bestDif = core.SideRight, dif1
	}
	return best, bestDif >= marginThreshold
}

// playout returns the score difference player can expect on line within
// depth half-moves, both sides choosing with bestMove. line must be a private
// copy; the depth == 1 case grabs on it directly.
//
// Moves are chosen against the unmutated input line and applied to a working
// copy, and the final difference subtracts the opponent's total on the input
// line rather than on the working copy. Both quirks are intentional.
func (s searcher) playout(player core.PlayerID, line *numberline.Line, depth int) int {
	if depth == 1 {
		line.Grab(player, larger(line))
		return line.Total(player) - line.Total(player.Opponent())
	}

	work := line.Copy()
	for depth > 0 {
		work.Grab(player, s.bestMove(player, line, depth))
		player = player.Opponent()
		depth--
		s.env.Log.Debugf(4, "hard: %s", work)
	}
	return work.Total(player) - line.Total(player.Opponent())
}
