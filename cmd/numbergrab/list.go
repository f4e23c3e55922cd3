package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-grab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List computer opponent difficulties",
	Long:  `Shows every opponent strategy registered with the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No opponents available.")
		return
	}

	fmt.Println("Available difficulties:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range strategies {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-4s  %-*s\n", "Tier", maxNameLen, "Name")
	fmt.Printf("  %-4s  %-*s\n", "----", maxNameLen, "----")

	for _, s := range strategies {
		fmt.Printf("  %-4d  %-*s\n", s.Tier, maxNameLen, s.Name)
	}

	fmt.Println()
	fmt.Println("Run 'numbergrab --ai --difficulty <tier>' to play against one.")
}
