package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start brickstorm in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a mode, Tab for the
score history. Pause a run or finish it, then press B/Esc to come back.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Score history
  Q            - Quit

Examples:
  brickstorm menu
  brickstorm menu --fps 30
  brickstorm menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	history := openHistory()
	feedback, closeAudio := newFeedback()
	logger, closeLog := fileLogger()
	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Feedback:   feedback,
		HighScores: highScoreStore(history),
	}

	err := tui.RunMenu(history, logger, cfg)

	// Cleanup
	closeAudio()
	closeLog()
	if history != nil {
		history.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
