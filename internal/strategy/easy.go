package strategy

import (
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

// Easy grabs at random, except that with two values left it takes the
// larger one.
type Easy struct{}

func (Easy) Name() string { return "easy" }

func (Easy) SelectMove(env registry.Env, _ core.PlayerID, line *numberline.Line) core.Side {
	if line.Size() == 2 {
		if line.Get(0) > line.Get(1) {
			return core.SideLeft
		}
		return core.SideRight
	}
	return core.Side(env.Rand.Intn(2))
}
