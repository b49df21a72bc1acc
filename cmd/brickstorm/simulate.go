package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
	"github.com/vovakirdan/brickstorm/internal/registry"
)

var (
	flagFrames int
	flagRecord bool
	flagDebug  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without any display. The autopilot keeps the
paddle under the lowest ball and fires whenever lasers are armed. The run
stops at game over or after --frames ticks, then logs a summary.

Examples:
  brickstorm simulate
  brickstorm simulate brickstorm_boss --frames 200000 --seed 7
  brickstorm simulate --record --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the finished run to the score history")
	simulateCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every game event")
}

func runSimulate(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	applyGameFlags()

	logger := newLogger("simulate")
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*brickstorm.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot be simulated\n", gameID)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  core.PlayfieldW,
		ScreenH:  core.PlayfieldH,
		TickRate: flagFPS,
		Seed:     seed,
	}
	game.Reset(runtime)
	s := game.Session()

	logger.Info("simulation started", "mode", gameID, "seed", seed, "frames", flagFrames)

	dt := runtime.FrameDelta()
	counts := make(map[string]int)
	start := time.Now()
	frames := 0
	for frames < flagFrames && !s.GameOver {
		for _, e := range s.Advance(dt, brickstorm.Autopilot(s)) {
			counts[e.String()]++
			logger.Debug("event", "frame", frames, "event", e, "score", s.Score, "level", s.Level)
		}
		frames++
	}

	snap := s.Snapshot()
	logger.Info("simulation finished",
		"frames", frames,
		"sim_seconds", fmt.Sprintf("%.1f", s.Time/1000),
		"wall", time.Since(start).Round(time.Millisecond),
		"score", s.Score,
		"level", s.Level,
		"lives", s.Lives,
		"game_over", s.GameOver,
		"hash", fmt.Sprintf("%016x", snap.Hash()),
	)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Info("events", "kind", name, "count", counts[name])
	}

	if flagRecord && s.Score > 0 {
		history := openHistory()
		if history == nil {
			return
		}
		defer history.Close()
		if _, err := history.SaveScore(gameID, s.Score, s.Level); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
}
