package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted after the config file.
const (
	EnvDB         = "NUMBERGRAB_DB"
	EnvDebug      = "NUMBERGRAB_DEBUG"
	EnvDifficulty = "NUMBERGRAB_DIFFICULTY"
)

// Load reads the settings.
// Search order: customPath -> ~/.numbergrab/config.yaml -> ./configs/numbergrab.yaml -> embedded default.
// Values from a .env file or the environment are applied on top.
func Load(customPath string) (Settings, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

func loadFile(customPath string) (Settings, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "numbergrab.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numbergrab", "config.yaml")
}

// ApplyEnv overrides cfg from the environment, loading ./.env first when
// present. Malformed values are ignored.
func ApplyEnv(cfg *Settings) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvDB); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Debug = n
		}
	}
	if v := os.Getenv(EnvDifficulty); v != "" {
		if d, err := ParseDifficulty(v); err == nil {
			cfg.Difficulty = d
		}
	}
}
