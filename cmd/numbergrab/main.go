// numbergrab is a two-player number line game for the terminal: players take
// turns grabbing a value from either end of the line, and the higher total
// wins.
//
// Usage:
//
//	numbergrab [flags]         - Play a game in the terminal
//	numbergrab menu            - Pick a match setup interactively
//	numbergrab serve           - Start SSH server for remote play
//	numbergrab results         - Show recorded results
//	numbergrab list            - List opponent difficulties
//
// Game flags:
//
//	--length <n>      - Number of values on the line (default: 20)
//	--max <n>         - Largest value on the line (default: 10)
//	--time <seconds>  - Total thinking time per player
//	--ai              - Play against the computer
//	--db <path>       - Set database path (default: ~/.numbergrab/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/number-grab/internal/strategy"
)

var (
	// Global flags
	flagRules      bool
	flagDebug      int
	flagSeed       int64
	flagLength     int
	flagMax        int
	flagFrenzy     bool
	flagTime       float64
	flagPassing    bool
	flagAI         bool
	flagPlayer2    bool
	flagDifficulty string
	flagGUI        bool
	flagConfig     string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numbergrab",
	Short: "Number Grab - take numbers from either end of the line",
	Long: `Number Grab is a turn-based game for two players, or one player
against the computer. A line of random numbers is laid out; on each turn
the player to move takes the leftmost or rightmost value. When the line is
empty the player with the higher total wins.

Available commands:
  play     - Play a game in the terminal (default)
  menu     - Interactive match setup menu
  serve    - Start SSH server for remote play
  results  - View recorded results
  list     - Show opponent difficulties

Examples:
  numbergrab
  numbergrab --ai --difficulty hard
  numbergrab --ai --player2 --time 60
  numbergrab --length 30 --max 50 --passing
  numbergrab serve --ssh :2222`,
	Args:                  cobra.NoArgs,
	Run:                   runPlay,
	DisableFlagsInUseLine: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&flagRules, "rules", false, "Print the rules before starting")
	flags.IntVar(&flagDebug, "debug", 0, "Debug level (0 = off)")
	flags.Int64Var(&flagSeed, "seed", -1, "RNG seed (negative = random based on time)")
	flags.IntVar(&flagLength, "length", 20, "Number of values on the line")
	flags.IntVar(&flagMax, "max", 10, "Largest value that can appear on the line")
	flags.BoolVar(&flagFrenzy, "frenzy", false, "Moves slower than 3 seconds forfeit the turn")
	flags.Float64Var(&flagTime, "time", 0, "Total thinking time per player in seconds (enables timed mode)")
	flags.BoolVar(&flagPassing, "passing", false, "Allow passing with move 2")
	flags.BoolVar(&flagAI, "ai", false, "Play against the computer")
	flags.BoolVar(&flagPlayer2, "player2", false, "Play as player 2 against the computer")
	flags.StringVar(&flagDifficulty, "difficulty", "2", "Computer difficulty: 1-3 or easy, medium, hard")
	flags.BoolVar(&flagGUI, "gui", false, "Use the graphical interface")
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.StringVar(&flagDBPath, "db", "~/.numbergrab/results.db", "Path to results database (empty disables)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(listCmd)
}
