package core

// Logical playfield size. All simulation happens in these units regardless of
// the device the game is drawn on.
const (
	PlayfieldW = 900
	PlayfieldH = 620
)

// HighScoreStore persists a single best score per key.
type HighScoreStore interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) error
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt the drawing scale, to seed their RNG and to reach
// the platform's optional collaborators (nil means absent).
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window driver)
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible gameplay

	Feedback   Feedback
	HighScores HighScoreStore
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the duration of one tick in seconds.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best known score for this game
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any notable events that occurred.
type StepResult struct {
	State  GameState
	Events []string
}
