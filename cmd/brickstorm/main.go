// brickstorm is a brick breaker with power-ups, lasers and boss levels,
// playable in the terminal, over SSH or in a desktop window.
//
// Usage:
//
//	brickstorm list              - List available modes
//	brickstorm play [mode]       - Play in the terminal
//	brickstorm menu              - Pick modes interactively
//	brickstorm window [mode]     - Play in a desktop window
//	brickstorm simulate [mode]   - Run a headless autopilot session
//	brickstorm serve             - Start SSH server for remote play
//	brickstorm scores [mode]     - Show the score history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickstorm/scores.db)
//	--store <kind>        - Best-score backend: sqlite or gdata
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brickstorm/internal/games/brickstorm"
)

const defaultMode = "brickstorm"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickstorm",
	Short: "Brickstorm - a brick breaker with bosses",
	Long: `Brickstorm is a brick breaker with power-ups, paddle lasers,
multi-ball, shields and a boss every sixth level.

Available commands:
  list      - Show all available modes
  play      - Play a mode in the terminal
  menu      - Interactive mode picker
  window    - Play in a desktop window
  simulate  - Headless autopilot run for soak testing
  serve     - Start SSH server for remote play
  scores    - View the score history

Examples:
  brickstorm play
  brickstorm play brickstorm_boss --difficulty hard
  brickstorm window --store gdata
  brickstorm simulate --frames 100000 --seed 42
  brickstorm serve --ssh :2222
  brickstorm scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickstorm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Best-score backend: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
