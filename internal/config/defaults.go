package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/numbergrab.yaml
var defaultYAML []byte

// Default returns the built-in settings, matching the command-line defaults.
func Default() Settings {
	return Settings{
		Debug:      0,
		Seed:       -1,
		Length:     20,
		Max:        10,
		Difficulty: DifficultyMedium,
		DBPath:     "~/.numbergrab/results.db",
		SSH: SSHSettings{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
