package strategy

import (
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

// Medium compares the two end pairs. With more than three values left it
// grabs from the end whose outer value most exceeds its inner neighbour:
// (first - second) against (last - second to last). With three or fewer it
// simply takes the larger end.
type Medium struct{}

func (Medium) Name() string { return "medium" }

func (Medium) SelectMove(_ registry.Env, _ core.PlayerID, line *numberline.Line) core.Side {
	n := line.Size()
	if n > 3 {
		d0 := line.Get(0) - line.Get(1)
		d1 := line.Get(n-1) - line.Get(n-2)
		if d0 > d1 {
			return core.SideLeft
		}
		return core.SideRight
	}
	return larger(line)
}
