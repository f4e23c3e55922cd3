package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is the strategy tier of the scripted opponent.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

var presets = map[string]Difficulty{
	"easy":   DifficultyEasy,
	"medium": DifficultyMedium,
	"normal": DifficultyMedium,
	"hard":   DifficultyHard,
}

// ParseDifficulty accepts a preset name ("easy", "medium", "hard") or a
// tier number. Numbers are not range checked here; Validate does that.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := presets[s]; ok {
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return Difficulty(n), nil
}

// String returns the preset name, or the number for tiers without one.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return strconv.Itoa(int(d))
	}
}

// UnmarshalYAML lets config files use either form.
func (d *Difficulty) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDifficulty(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML writes the preset name.
func (d Difficulty) MarshalYAML() (any, error) {
	return d.String(), nil
}
