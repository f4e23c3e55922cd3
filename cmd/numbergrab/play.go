package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-grab/internal/config"
	"github.com/vovakirdan/number-grab/internal/console"
	"github.com/vovakirdan/number-grab/internal/game"
	"github.com/vovakirdan/number-grab/internal/logging"
	"github.com/vovakirdan/number-grab/internal/registry"
	"github.com/vovakirdan/number-grab/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Start a game of Number Grab on this terminal.

Moves:
  0  - Grab the leftmost value
  1  - Grab the rightmost value
  2  - Pass the turn (only with --passing)

Commands:
  q  - Quit            n  - New game
  t  - Remaining time  p  - Game parameters
  r  - Rules           s  - Show the line
  c  - List commands

Modes:
  --frenzy   - Moves slower than three seconds are forfeited
  --time T   - Each player gets T seconds in total (not with --frenzy)

Examples:
  numbergrab play --rules --ai --difficulty 1
  numbergrab play --ai --difficulty hard --player2
  numbergrab play --time 90 --passing`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadSettings reads the config file and environment, then applies every
// flag the user set explicitly.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		s.Debug = flagDebug
	}
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("length") {
		s.Length = flagLength
	}
	if flags.Changed("max") {
		s.Max = flagMax
	}
	if flags.Changed("frenzy") {
		s.Frenzy = flagFrenzy
	}
	if flags.Changed("time") {
		s.SetTime(flagTime)
	}
	if flags.Changed("passing") {
		s.Passing = flagPassing
	}
	if flags.Changed("ai") {
		s.AI = flagAI
	}
	if flags.Changed("player2") {
		s.Player2 = flagPlayer2
	}
	if flags.Changed("difficulty") {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return s, err
		}
		s.Difficulty = d
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	return s, nil
}

// mustLoadSettings loads and validates the settings, printing the problems
// and usage and exiting on failure.
func mustLoadSettings(cmd *cobra.Command) config.Settings {
	s, err := loadSettings(cmd)
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cmd.SetOut(os.Stderr)
		_ = cmd.Usage()
		os.Exit(1)
	}
	return s
}

func runPlay(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)

	if flagRules {
		fmt.Print(console.Rules + "\n")
	}
	if flagGUI {
		fmt.Fprintln(os.Stderr, "The graphical interface is not implemented; playing in the terminal.")
	}

	playGame(s)
}

// openStore opens the results ledger, or returns nil when it is disabled
// or unavailable.
func openStore(path string, log *logging.Reporter) *storage.Store {
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		log.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// checkOpponent rejects a computer difficulty with no registered strategy.
func checkOpponent(s config.Settings) error {
	if s.AI && !registry.Exists(int(s.Difficulty)) {
		return fmt.Errorf("no computer opponent for difficulty %d", int(s.Difficulty))
	}
	return nil
}

// playGame runs one game on stdin/stdout. It does not return: the game
// terminates the process when it ends.
func playGame(s config.Settings) {
	if err := checkOpponent(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'numbergrab list' to see available difficulties.")
		os.Exit(1)
	}

	log := logging.Stderr(s.Debug)
	store := openStore(s.DBPath, log)

	opts := []game.Option{
		game.WithLogger(log),
		game.WithExit(func(code int) {
			// Close store before exit
			if store != nil {
				store.Close()
			}
			os.Exit(code)
		}),
	}
	if store != nil {
		opts = append(opts, game.WithRecorder(store))
	}

	g, err := game.New(s.GameConfig(), console.NewSource(os.Stdin, os.Stdout), console.NewPrinter(os.Stdout, nil), opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'numbergrab list' to see available difficulties.")
		os.Exit(1)
	}

	g.Play()
}
