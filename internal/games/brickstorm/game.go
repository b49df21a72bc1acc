package brickstorm

import (
	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/registry"
)

// Mode selects where a run starts.
type Mode int

const (
	ModeClassic  Mode = iota // Start at level 1
	ModeBossRush             // Start at the first boss level
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// LoadConfig loads the configuration the CLI flags point at, with the
// difficulty preset and environment overrides applied.
func LoadConfig() (config.BrickstormConfig, error) {
	cfg, err := config.Load(configPath)
	config.ApplyPreset(&cfg, difficultyPreset)
	config.ApplyEnv(&cfg)
	return cfg, err
}

// SettingsFromConfig maps the YAML configuration onto session settings.
func SettingsFromConfig(cfg config.BrickstormConfig) Settings {
	return Settings{
		Lives:          cfg.Gameplay.Lives,
		MaxLives:       cfg.Gameplay.MaxLives,
		MaxShields:     cfg.Gameplay.MaxShields,
		BossEvery:      cfg.Gameplay.BossEvery,
		StartLevel:     1,
		PaddleWidth:    cfg.Paddle.Width,
		PaddleMaxWidth: cfg.Paddle.MaxWidth,
		PaddleSpeed:    cfg.Paddle.Speed,
		BallBaseSpeed:  cfg.Ball.BaseSpeed,
		BallLevelStep:  cfg.Ball.LevelSpeedStep,
	}.normalized()
}

// Game adapts a Session to the registry.Game contract. Restart replaces the
// session wholesale.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	session *Session

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic game starting at level 1.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBossRush creates a game that opens on the first boss level.
func NewBossRush() *Game {
	return &Game{mode: ModeBossRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBossRush {
		return "brickstorm_boss"
	}
	return "brickstorm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBossRush {
		return "Brickstorm (Boss Rush)"
	}
	return "Brickstorm"
}

// Reset builds a fresh running session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// A bad config file still yields defaults with the preset and env applied.
	cfg, _ := LoadConfig()
	settings := SettingsFromConfig(cfg)
	if g.mode == ModeBossRush {
		settings.StartLevel = settings.BossEvery
	}

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	opts := []Option{
		WithSettings(settings),
		WithRand(NewSimpleRNG(runtime.Seed)),
	}
	if runtime.Feedback != nil {
		opts = append(opts, WithFeedback(runtime.Feedback))
	}
	if runtime.HighScores != nil {
		opts = append(opts, WithHighScores(runtime.HighScores))
	}

	g.session = NewSession(opts...)
	g.session.Start()
}

// Resize updates the layout for a new terminal size without touching play.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Session exposes the running session for drivers that draw it directly.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	events := g.session.Advance(g.runtime.FrameDelta(), InputFromFrame(in))

	var names []string
	for _, e := range events {
		names = append(names, e.String())
	}
	return core.StepResult{State: g.State(), Events: names}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		GameOver:  g.session.GameOver,
		Paused:    g.session.Paused,
	}
}

// Level returns the level the current run has reached.
func (g *Game) Level() int {
	if g.session == nil {
		return 0
	}
	return g.session.Level
}

// Register the games with the registry
func init() {
	registry.Register("brickstorm", func() registry.Game {
		return New()
	})
	registry.Register("brickstorm_boss", func() registry.Game {
		return NewBossRush()
	})
}
