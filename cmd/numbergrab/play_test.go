package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/number-grab/internal/config"
)

func TestLoadSettingsAppliesChangedFlags(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvDifficulty, "")

	path := filepath.Join(t.TempDir(), "numbergrab.yaml")
	yaml := "length: 12\nmax: 40\npassing: true\ndifficulty: easy\ndb: \"\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	err := playCmd.ParseFlags([]string{
		"--config", path,
		"--length", "5",
		"--ai",
		"--difficulty", "hard",
		"--time", "45",
	})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	s, err := loadSettings(playCmd)
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}

	if s.Length != 5 {
		t.Errorf("Length = %d, want flag value 5", s.Length)
	}
	if s.Max != 40 {
		t.Errorf("Max = %d, want file value 40", s.Max)
	}
	if !s.Passing {
		t.Error("Passing from the file was overwritten by an unset flag")
	}
	if !s.AI || s.Difficulty != config.DifficultyHard {
		t.Errorf("AI = %v, Difficulty = %v; want true, hard", s.AI, s.Difficulty)
	}
	if !s.Timed() || *s.Time != 45 {
		t.Errorf("Time = %v, want 45", s.Time)
	}
	if s.DBPath != "" {
		t.Errorf("DBPath = %q, want disabled", s.DBPath)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	// A time budget plus frenzy is a configuration fault.
	s.Frenzy = true
	if err := s.Validate(); !errors.Is(err, config.ErrTimedFrenzy) {
		t.Errorf("Validate() = %v, want ErrTimedFrenzy", err)
	}
}

func TestCheckOpponent(t *testing.T) {
	tests := []struct {
		name    string
		ai      bool
		tier    config.Difficulty
		wantErr bool
	}{
		{"hard computer", true, config.DifficultyHard, false},
		{"easy computer", true, config.DifficultyEasy, false},
		{"unregistered tier", true, config.Difficulty(9), true},
		{"two players ignore difficulty", false, config.Difficulty(9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			s.AI = tt.ai
			s.Difficulty = tt.tier
			if err := checkOpponent(s); (err != nil) != tt.wantErr {
				t.Errorf("checkOpponent() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
