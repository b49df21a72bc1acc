// Package window runs brickstorm in a desktop window with ebiten.
// The logical screen is the 900x620 playfield, so the session is drawn
// without any coordinate mapping; ebiten scales it to the window.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

// TickRate is the fixed simulation rate of the window driver.
const TickRate = 60

// Config holds the collaborators of a window run. Every field is optional.
type Config struct {
	Seed       int64
	Scale      float64 // Initial window size relative to the playfield
	Feedback   core.Feedback
	HighScores core.HighScoreStore
	History    *storage.Store // Receives one entry per finished run
	Logger     *log.Logger
}

// Driver implements ebiten.Game around a brickstorm game.
type Driver struct {
	game    *brickstorm.Game
	runtime core.RuntimeConfig
	history *storage.Store
	logger  *log.Logger
	cursor  [2]int
	saved   bool
}

// New prepares a driver and starts the first run.
func New(game *brickstorm.Game, cfg Config) *Driver {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	d := &Driver{
		game: game,
		runtime: core.RuntimeConfig{
			ScreenW:    core.PlayfieldW,
			ScreenH:    core.PlayfieldH,
			TickRate:   TickRate,
			Seed:       cfg.Seed,
			Feedback:   cfg.Feedback,
			HighScores: cfg.HighScores,
		},
		history: cfg.History,
		logger:  cfg.Logger,
	}
	d.game.Reset(d.runtime)
	return d
}

// Update advances one tick. Returning ebiten.Termination closes the window.
func (d *Driver) Update() error {
	keys := readKeys(&d.cursor)
	if keys.Quit {
		return ebiten.Termination
	}
	d.step(frameFromKeys(keys, d.game.State().GameOver))
	return nil
}

// step feeds one frame to the game, restarting with a fresh seed on request.
func (d *Driver) step(frame core.InputFrame) {
	if frame.Has(core.ActionRestart) {
		d.runtime.Seed = time.Now().UnixNano()
		d.game.Reset(d.runtime)
		d.saved = false
		d.logger.Info("run restarted", "game", d.game.ID())
		return
	}

	result := d.game.Step(frame)
	for _, e := range result.Events {
		d.logger.Debug("game event", "event", e, "score", result.State.Score)
	}

	if result.State.GameOver && !d.saved {
		d.saved = true
		d.recordRun(result.State.Score)
	}
}

// recordRun appends a finished run to the score history.
func (d *Driver) recordRun(score int) {
	level := d.game.Level()
	d.logger.Info("game over", "game", d.game.ID(), "score", score, "level", level)
	if d.history == nil || score <= 0 {
		return
	}
	if _, err := d.history.SaveScore(d.game.ID(), score, level); err != nil {
		d.logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the session.
func (d *Driver) Draw(screen *ebiten.Image) {
	if s := d.game.Session(); s != nil {
		drawSession(screen, s)
	}
}

// Layout fixes the logical screen to the playfield.
func (d *Driver) Layout(_, _ int) (int, int) {
	return core.PlayfieldW, core.PlayfieldH
}

// Run opens the window and blocks until it is closed.
func Run(game *brickstorm.Game, cfg Config) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	d := New(game, cfg)

	ebiten.SetWindowSize(int(core.PlayfieldW*scale), int(core.PlayfieldH*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TickRate)

	d.logger.Info("window opened", "game", game.ID(), "seed", d.runtime.Seed)
	return ebiten.RunGame(d)
}
