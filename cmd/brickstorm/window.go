package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
	"github.com/vovakirdan/brickstorm/internal/platform/window"
	"github.com/vovakirdan/brickstorm/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a graphical window and play the given mode (default: brickstorm).

The playfield is 900x620 and scales with the window. The simulation
always runs at 60 ticks per second; --fps does not apply here.

Controls:
  Left/Right, A/D, mouse  - Move paddle
  Up/W/F, left click      - Fire lasers
  Space/P                 - Pause
  R                       - Restart (after game over)
  Q/Esc                   - Quit

Examples:
  brickstorm window
  brickstorm window brickstorm_boss --scale 1.5
  brickstorm window --store gdata`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to 900x620")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	applyGameFlags()

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*brickstorm.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	history := openHistory()
	feedback, closeAudio := newFeedback()

	runErr := window.Run(game, window.Config{
		Seed:       flagSeed,
		Scale:      flagScale,
		Feedback:   feedback,
		HighScores: highScoreStore(history),
		History:    history,
		Logger:     newLogger("brickstorm"),
	})

	closeAudio()
	if history != nil {
		history.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
