package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/number-grab/internal/console"
	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/logging"
	"github.com/vovakirdan/number-grab/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a match setup from a menu",
	Long: `Start Number Grab in interactive menu mode.

Choose who plays whom, toggle passing and frenzy, or browse the results
board. The chosen game is then played in the terminal as usual; flags such
as --length, --max and --time still apply.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start the game
  P / F        - Toggle passing / frenzy
  Tab          - Results board
  Q            - Quit

Examples:
  numbergrab menu
  numbergrab menu --length 30 --passing
  numbergrab menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)

	cfg := core.DefaultConfig()

	// Get terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.WantsScoreboard {
			store := openStore(s.DBPath, logging.Stderr(s.Debug))
			goBack, sbErr := tui.RunResultsBoard(store, cfg.ScreenW, cfg.ScreenH)
			if store != nil {
				store.Close()
			}
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from results board
		}

		if menuResult.Quit {
			return
		}

		s = menuResult.Settings
		if flagRules {
			fmt.Print(console.Rules + "\n")
		}
		playGame(s)
		return
	}
}
