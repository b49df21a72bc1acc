package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/registry"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every playable mode with its best recorded score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Best scores are optional; a missing database just leaves them blank.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	maxIDLen := len("ID")
	maxTitleLen := len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, g := range games {
		best := "-"
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil && stats.GamesCount > 0 {
				best = fmt.Sprintf("%d", stats.HighScore)
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'brickstorm play <id>' to play a mode.")
}
