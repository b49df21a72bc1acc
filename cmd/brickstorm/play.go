package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/platform/tui"
	"github.com/vovakirdan/brickstorm/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run of the given mode (default: brickstorm) in the terminal.

Controls:
  Left/Right, A/D  - Move paddle (the mouse also steers it)
  Up/W/F, click    - Fire lasers when the power-up is active
  Space/P          - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slower ball
  normal - Values from the config file
  hard   - 2 lives, narrow paddle, faster ball

Examples:
  brickstorm play
  brickstorm play brickstorm_boss
  brickstorm play --difficulty hard
  brickstorm play --config ./my-brickstorm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	applyGameFlags()

	width, height := terminalSize()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	history := openHistory()
	feedback, closeAudio := newFeedback()
	logger, closeLog := fileLogger()

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Feedback:   feedback,
		HighScores: highScoreStore(history),
	}

	runErr := tui.Run(game, history, logger, cfg)

	// Release everything before a potential exit
	closeAudio()
	closeLog()
	if history != nil {
		history.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize reports the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
