// Package registry provides a global registry of move strategies keyed by
// difficulty tier. Strategies register themselves in init() functions,
// allowing the game to instantiate an opponent without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/logging"
	"github.com/vovakirdan/number-grab/internal/numberline"
)

// Env is the decision context handed to a strategy on every call.
// The random source is the game's shared generator.
type Env struct {
	Rand *rand.Rand
	Log  *logging.Reporter
}

// Strategy is the interface every move policy implements.
// A strategy must not mutate the line it is given; it may mutate copies.
type Strategy interface {
	// Name returns a short identifier ("easy", "medium", "hard").
	Name() string

	// SelectMove picks SideLeft or SideRight for player on a non-empty line.
	SelectMove(env Env, player core.PlayerID, line *numberline.Line) core.Side
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	Tier int
	Name string
}

// Factory is a function that creates a new strategy instance.
type Factory func() Strategy

var (
	factories = make(map[int]Factory)
	names     = make(map[int]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory for tier.
// Typically called from the strategy package's init() function.
// Panics if the tier is already registered.
func Register(tier int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[tier]; exists {
		panic(fmt.Sprintf("registry: difficulty %d already registered", tier))
	}

	factories[tier] = f
	names[tier] = f().Name()
}

// List returns all registered strategies, sorted by tier.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for tier := range factories {
		result = append(result, StrategyInfo{Tier: tier, Name: names[tier]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Tier < result[j].Tier
	})

	return result
}

// Create instantiates the strategy for tier.
func Create(tier int) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[tier]
	if !ok {
		return nil, fmt.Errorf("registry: unknown difficulty %d", tier)
	}

	return f(), nil
}

// TierByName looks up the tier registered under name.
func TierByName(name string) (int, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for tier, n := range names {
		if n == name {
			return tier, true
		}
	}
	return 0, false
}

// Exists checks if a strategy is registered for tier.
func Exists(tier int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[tier]
	return ok
}
