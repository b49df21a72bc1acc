package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
	"github.com/vovakirdan/brickstorm/internal/platform/tui"
	"github.com/vovakirdan/brickstorm/internal/registry"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the score history for a mode",
	Long: `Display the best recorded runs for the given mode (default: brickstorm).

Examples:
  brickstorm scores
  brickstorm scores brickstorm_boss --limit 20
  brickstorm scores --interactive
  brickstorm scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and best score of the mode")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all modes in a table")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := modeArg(args)

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagClear {
		clearScores(store, gameID, title)
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickstorm play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Furthest level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
}

// clearScores wipes the history of one mode and the shared in-game best score.
func clearScores(store *storage.Store, gameID, title string) {
	if err := store.ClearScores(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	if err := store.ClearHighScore(brickstorm.HighScoreKey); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing best score: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared scores for %s.\n", title)
}
