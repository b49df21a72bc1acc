package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickstorm/internal/audio"
	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
	"github.com/vovakirdan/brickstorm/internal/registry"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

// Best-score backends selectable with --store.
const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

// modeArg returns the mode named on the command line, or the default,
// and exits when it is not registered.
func modeArg(args []string) string {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickstorm list' to see available modes.")
		os.Exit(1)
	}
	return gameID
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() {
	brickstorm.SetConfigPath(flagConfig)
	brickstorm.SetDifficultyPreset(flagDifficulty)
}

// openHistory opens the score history. The game still works without it.
func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// highScoreStore picks the backend for the in-game best score.
func highScoreStore(history *storage.Store) core.HighScoreStore {
	switch flagStore {
	case storeGdata:
		gs, err := storage.OpenGdata("brickstorm")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		return gs
	case storeSQLite:
		if history == nil {
			return nil
		}
		return history
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown store %q, best score will not persist\n", flagStore)
		return nil
	}
}

// newFeedback starts the tone player from the audio config section.
// On failure the game runs silently.
func newFeedback() (core.Feedback, func()) {
	cfg, err := brickstorm.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	player := audio.NewPlayer(audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: cfg.Audio.SampleRate,
	})
	if err := player.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio disabled: %v\n", err)
		return core.NopFeedback{}, func() {}
	}
	return player, player.Close
}

// newLogger returns a stderr logger for commands that own the terminal.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// fileLogger logs to ~/.brickstorm/brickstorm.log so the terminal UI stays
// clean. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".brickstorm")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "brickstorm.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickstorm",
	})
	return logger, func() { _ = f.Close() }
}
