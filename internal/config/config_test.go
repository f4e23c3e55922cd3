package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbergrab.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var s Settings
	if err := yaml.Unmarshal(DefaultYAML(), &s); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	want := Default()
	if s.Seed != want.Seed || s.Length != want.Length || s.Max != want.Max ||
		s.Difficulty != want.Difficulty || s.DBPath != want.DBPath || s.SSH != want.SSH ||
		s.Time != nil || s.AI || s.Frenzy || s.Passing || s.Player2 || s.Debug != 0 {
		t.Errorf("embedded defaults = %+v, want %+v", s, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv(EnvDifficulty, "")

	path := writeFile(t, "length: 7\ndifficulty: hard\ntime: 12.5\nai: true\nssh:\n  idle_timeout: 5m\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if s.Length != 7 {
		t.Errorf("Length = %d, want 7", s.Length)
	}
	if s.Max != 10 {
		t.Errorf("Max = %d, want default 10", s.Max)
	}
	if s.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %v, want hard", s.Difficulty)
	}
	if !s.Timed() || *s.Time != 12.5 {
		t.Errorf("Time = %v, want 12.5", s.Time)
	}
	if s.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", s.SSH.IdleTimeout)
	}
	if s.SSH.Address != ":23234" {
		t.Errorf("Address = %q, want default", s.SSH.Address)
	}
}

func TestLoadNumericDifficulty(t *testing.T) {
	t.Setenv(EnvDifficulty, "")
	s, err := Load(writeFile(t, "difficulty: 1\n"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %v, want easy", s.Difficulty)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if _, err := Load(writeFile(t, "length: [1, 2\n")); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if _, err := Load(writeFile(t, "difficulty: impossible\n")); !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("Load() with bad difficulty = %v, want ErrInvalidDifficulty", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDifficulty, "")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Length != 20 || s.Max != 10 || s.Difficulty != DifficultyMedium {
		t.Errorf("Load(\"\") = %+v, want defaults", s)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".numbergrab")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("max: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Max != 99 {
		t.Errorf("Max = %d, want 99", s.Max)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvDebug, "3")
	t.Setenv(EnvDifficulty, "easy")

	s := Default()
	ApplyEnv(&s)

	if s.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (ledger disabled)", s.DBPath)
	}
	if s.Debug != 3 {
		t.Errorf("Debug = %d, want 3", s.Debug)
	}
	if s.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %v, want easy", s.Difficulty)
	}

	t.Setenv(EnvDebug, "lots")
	ApplyEnv(&s)
	if s.Debug != 3 {
		t.Errorf("malformed debug level changed Debug to %d", s.Debug)
	}
}

func TestValidate(t *testing.T) {
	neg, zero := -1.0, 0.0
	tests := []struct {
		name   string
		modify func(*Settings)
		want   []error
	}{
		{"debug", func(s *Settings) { s.Debug = -1 }, []error{ErrInvalidDebug}},
		{"length", func(s *Settings) { s.Length = -3 }, []error{ErrInvalidLength}},
		{"zero length ok", func(s *Settings) { s.Length = 0 }, nil},
		{"max", func(s *Settings) { s.Max = 0 }, []error{ErrInvalidMax}},
		{"zero time", func(s *Settings) { s.Time = &zero }, []error{ErrInvalidTime}},
		{"negative time", func(s *Settings) { s.Time = &neg }, []error{ErrInvalidTime}},
		{"time and frenzy", func(s *Settings) { s.SetTime(10); s.Frenzy = true }, []error{ErrTimedFrenzy}},
		{"player2", func(s *Settings) { s.Player2 = true }, []error{ErrPlayer2WithoutAI}},
		{"player2 with ai", func(s *Settings) { s.Player2, s.AI = true, true }, nil},
		{"difficulty low", func(s *Settings) { s.Difficulty = 0 }, []error{ErrInvalidDifficulty}},
		{"difficulty high", func(s *Settings) { s.Difficulty = 4 }, []error{ErrInvalidDifficulty}},
		{"several", func(s *Settings) { s.Max = 0; s.Debug = -2 }, []error{ErrInvalidMax, ErrInvalidDebug}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := s.Validate()

			if len(tt.want) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Validate() = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"2", DifficultyMedium, false},
		{"7", Difficulty(7), false},
		{"brutal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGameConfig(t *testing.T) {
	s := Default()
	s.Seed = 9
	s.AI, s.Player2 = true, true
	s.Difficulty = DifficultyHard

	cfg := s.GameConfig()
	if cfg.Timed || !math.IsInf(cfg.TimeBudget, 1) {
		t.Errorf("untimed settings gave Timed=%v budget=%v", cfg.Timed, cfg.TimeBudget)
	}
	if !cfg.SinglePlayer || !cfg.HumanIsPlayer2 || cfg.Difficulty != 3 || cfg.Seed != 9 {
		t.Errorf("GameConfig() = %+v", cfg)
	}

	s.SetTime(45)
	cfg = s.GameConfig()
	if !cfg.Timed || cfg.TimeBudget != 45 {
		t.Errorf("timed settings gave Timed=%v budget=%v", cfg.Timed, cfg.TimeBudget)
	}
}
