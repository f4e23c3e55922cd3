package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDebug      = errors.New("debug level must be >= 0")
	ErrInvalidLength     = errors.New("line length must be >= 0")
	ErrInvalidMax        = errors.New("maximum value must be >= 1")
	ErrInvalidTime       = errors.New("time must be > 0")
	ErrTimedFrenzy       = errors.New("time cannot be combined with frenzy")
	ErrPlayer2WithoutAI  = errors.New("player2 requires ai")
	ErrInvalidDifficulty = errors.New("difficulty must be 1, 2 or 3")
)

// Validate reports every problem with s at once.
func (s Settings) Validate() error {
	var errs []error

	if s.Debug < 0 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrInvalidDebug, s.Debug))
	}
	if s.Length < 0 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrInvalidLength, s.Length))
	}
	if s.Max < 1 {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrInvalidMax, s.Max))
	}
	if s.Time != nil {
		if !(*s.Time > 0) {
			errs = append(errs, fmt.Errorf("%w (got %g)", ErrInvalidTime, *s.Time))
		}
		if s.Frenzy {
			errs = append(errs, ErrTimedFrenzy)
		}
	}
	if s.Player2 && !s.AI {
		errs = append(errs, ErrPlayer2WithoutAI)
	}
	if s.Difficulty < DifficultyEasy || s.Difficulty > DifficultyHard {
		errs = append(errs, fmt.Errorf("%w (got %d)", ErrInvalidDifficulty, s.Difficulty))
	}

	return errors.Join(errs...)
}
