// Package config provides YAML-based settings loading for Number Grab,
// with environment and command-line overrides layered on top.
package config

import (
	"math"
	"time"

	"github.com/vovakirdan/number-grab/internal/game"
)

// Settings is everything that can be configured before a game starts.
type Settings struct {
	Debug      int         `yaml:"debug"`
	Seed       int64       `yaml:"seed"`
	Length     int         `yaml:"length"`
	Max        int         `yaml:"max"`
	Time       *float64    `yaml:"time,omitempty"` // nil when untimed
	Frenzy     bool        `yaml:"frenzy"`
	Passing    bool        `yaml:"passing"`
	AI         bool        `yaml:"ai"`
	Player2    bool        `yaml:"player2"`
	Difficulty Difficulty  `yaml:"difficulty"`
	DBPath     string      `yaml:"db"`
	SSH        SSHSettings `yaml:"ssh"`
}

// SSHSettings configures the serve command.
type SSHSettings struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Timed reports whether a total time budget was set.
func (s Settings) Timed() bool {
	return s.Time != nil
}

// SetTime enables timed mode with the given budget in seconds.
func (s *Settings) SetTime(seconds float64) {
	s.Time = &seconds
}

// GameConfig converts the settings into the rules of one game.
func (s Settings) GameConfig() game.Config {
	cfg := game.Config{
		Seed:           s.Seed,
		Length:         s.Length,
		Max:            s.Max,
		TimeBudget:     math.Inf(1),
		Difficulty:     int(s.Difficulty),
		Frenzy:         s.Frenzy,
		Passing:        s.Passing,
		SinglePlayer:   s.AI,
		HumanIsPlayer2: s.Player2,
	}
	if s.Time != nil {
		cfg.Timed = true
		cfg.TimeBudget = *s.Time
	}
	return cfg
}
