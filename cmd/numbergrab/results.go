package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/number-grab/internal/platform/tui"
	"github.com/vovakirdan/number-grab/internal/storage"
)

var (
	flagResultsMode  string
	flagResultsLimit int
	flagResultsClear bool
	flagResultsBoard bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded results",
	Long: `Display the most recent games from the results ledger, followed by
per-mode statistics.

Modes are "two-player", "vs-cpu-d<N>" (human moves first) and
"cpu-first-d<N>" (computer moves first).

Examples:
  numbergrab results
  numbergrab results --mode vs-cpu-d3 --limit 20
  numbergrab results --board
  numbergrab results --clear --mode two-player`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsMode, "mode", "", "Only show this mode")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of games to list")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete recorded results (all, or --mode only)")
	resultsCmd.Flags().BoolVar(&flagResultsBoard, "board", false, "Browse results in the interactive board")
}

func runResults(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)
	if s.DBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: the results database is disabled (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsClear {
		if err := store.Clear(flagResultsMode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Println("Results cleared.")
		return
	}

	if flagResultsBoard {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunResultsBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	results, err := store.RecentResults(flagResultsMode, flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	title := "all modes"
	if flagResultsMode != "" {
		title = flagResultsMode
	}
	fmt.Printf("Recent games - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'numbergrab --ai' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-14s  %4s  %4s  %-6s  %s\n", "Date", "Mode", "P1", "P2", "Winner", "Ended")
	fmt.Printf("  %-16s  %-14s  %4s  %4s  %-6s  %s\n", "----", "----", "--", "--", "------", "-----")

	for _, r := range results {
		winner := r.Winner
		if winner == "" {
			winner = "tie"
		}
		fmt.Printf("  %-16s  %-14s  %4d  %4d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.P1Total, r.P2Total, winner, r.Reason)
	}

	stats, err := store.Stats()
	if err != nil || len(stats) == 0 {
		return
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		if flagResultsMode == "" || mode == flagResultsMode {
			modes = append(modes, mode)
		}
	}
	sort.Strings(modes)

	fmt.Println()
	fmt.Printf("  %-14s  %5s  %7s  %7s  %4s  %4s\n", "Mode", "Games", "P1 wins", "P2 wins", "Ties", "Best")
	for _, mode := range modes {
		st := stats[mode]
		fmt.Printf("  %-14s  %5d  %7d  %7d  %4d  %4d\n", mode, st.Games, st.P1Wins, st.P2Wins, st.Ties, st.BestTotal)
	}
}
