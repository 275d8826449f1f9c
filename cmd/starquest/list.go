package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/platform/tui"
	"github.com/vovakirdan/star-quest/internal/registry"
	"github.com/vovakirdan/star-quest/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the star games in hub order with their goals, then any extra screens.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	entries := tui.HubEntries()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.GameID))
		maxTitleLen = max(maxTitleLen, len(e.Title))
	}

	fmt.Println("Star games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Goal")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, e.GameID, maxTitleLen, e.Title, e.Goal)
	}

	var extras []registry.GameInfo
	for _, g := range registry.List() {
		if !storage.IsStarGame(g.ID) {
			extras = append(extras, g)
		}
	}
	if len(extras) > 0 {
		fmt.Println()
		fmt.Println("Also registered:")
		for _, g := range extras {
			fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		}
	}

	fmt.Println()
	fmt.Println("Run 'starquest play <id>' to play a game, or 'starquest' for the hub.")
}
