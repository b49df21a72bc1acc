package brickstorm

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/registry"
)

func testRuntime(t *testing.T) core.RuntimeConfig {
	t.Helper()
	// Keep a user config in the real home directory out of the run.
	t.Setenv("HOME", t.TempDir())
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestRegistry(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"brickstorm", "Brickstorm"},
		{"brickstorm_boss", "Brickstorm (Boss Rush)"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("got %q/%q, expected %q/%q", g.ID(), g.Title(), tt.id, tt.title)
			}
		})
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(t)

	g := New()
	g.Reset(cfg)

	s := g.Session()
	if s == nil || !s.Running {
		t.Fatal("Reset should leave a running session")
	}
	if s.Level != 1 || s.Lives != 3 || s.Boss != nil {
		t.Errorf("level=%d lives=%d boss=%v", s.Level, s.Lives, s.Boss)
	}

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected state %+v", state)
	}
}

func TestBossRushStartsOnBossLevel(t *testing.T) {
	g := NewBossRush()
	g.Reset(testRuntime(t))

	s := g.Session()
	if s.Level != 6 || s.Boss == nil {
		t.Errorf("level=%d boss=%v, expected the first boss level", s.Level, s.Boss)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(testRuntime(t))

	if g.Session().Lives != 2 {
		t.Errorf("lives = %d, expected 2 on hard", g.Session().Lives)
	}
	if g.Session().Paddle.W != 110 {
		t.Errorf("paddle width = %v, expected 110 on hard", g.Session().Paddle.W)
	}
}

func TestGamePresetSurvivesUnreadableConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig should report the missing file")
	}

	g := New()
	g.Reset(testRuntime(t))

	if g.Session().Lives != 2 {
		t.Errorf("lives = %d, expected the hard preset to apply", g.Session().Lives)
	}
	if g.Session().Paddle.W != 110 {
		t.Errorf("paddle width = %v, expected the hard preset to apply", g.Session().Paddle.W)
	}
}

func TestGameHighScoresFromRuntime(t *testing.T) {
	store := newMemStore()
	store.scores[HighScoreKey] = 999

	cfg := testRuntime(t)
	cfg.HighScores = store

	g := New()
	g.Reset(cfg)
	if g.State().HighScore != 999 {
		t.Errorf("HighScore = %d, expected 999", g.State().HighScore)
	}
}

func TestGamePauseAndRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(t))

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	before := g.Session().Time
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Time != before {
		t.Error("paused game must not advance")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}

	old := g.Session()
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.Session() == old {
		t.Error("restart should build a new session")
	}
	if g.Session().Time != 0 || !g.Session().Running {
		t.Error("restarted session should be fresh and running")
	}
}

func TestGameStepEvents(t *testing.T) {
	g := New()
	g.Reset(testRuntime(t))

	s := g.Session()
	keepLevelOpen(s)
	s.Balls[0].Y = 700

	res := g.Step(core.NewInputFrame())
	if len(res.Events) != 1 || res.Events[0] != "life_lost" {
		t.Errorf("events = %v, expected [life_lost]", res.Events)
	}
}

func TestGameTooSmall(t *testing.T) {
	cfg := testRuntime(t)
	cfg.ScreenW, cfg.ScreenH = 20, 8

	g := New()
	g.Reset(cfg)
	g.Step(core.NewInputFrame())
	if g.Session().Time != 0 {
		t.Error("a too-small screen should hold the simulation")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected a size hint, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.Session().Time == 0 {
		t.Error("simulation should resume after a resize")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(t))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score 0", "Lives 3", "Level 1", "Hi 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// Paddle at logical y=550 lands on row 1 + 550*23/620.
	if !strings.ContainsRune(screen.Row(21), PaddleChar) {
		t.Errorf("paddle missing from row 21: %q", screen.Row(21))
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball missing")
	}

	g.Session().GameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(t)

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].Set(core.ActionLeft)
		case i%40 < 30:
			inputs[i].Set(core.ActionRight)
		default:
			inputs[i].SetPointer(float64(i % 900))
		}
		if i%9 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Session().Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}
