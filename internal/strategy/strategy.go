// Package strategy implements the three scripted opponents: Easy, Medium and
// Hard. Each registers itself with the registry under its difficulty tier.
package strategy

import (
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
	"github.com/vovakirdan/number-grab/internal/registry"
)

// Difficulty tiers.
const (
	TierEasy   = 1
	TierMedium = 2
	TierHard   = 3
)

func init() {
	registry.Register(TierEasy, func() registry.Strategy { return Easy{} })
	registry.Register(TierMedium, func() registry.Strategy { return Medium{} })
	registry.Register(TierHard, func() registry.Strategy { return Hard{} })
}

// larger picks the end holding the bigger value. Ties go right.
func larger(line *numberline.Line) core.Side {
	if line.First() > line.Last() {
		return core.SideLeft
	}
	return core.SideRight
}
